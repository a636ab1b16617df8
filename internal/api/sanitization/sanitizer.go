package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	newlineRegex    = regexp.MustCompile(`\r\n|\r|\n`)
)

// EscapeHTML escapes text for embedding inside an HTML element
func EscapeHTML(input string) string {
	return template.HTMLEscapeString(input)
}

// EscapeMultiline escapes text and keeps its line breaks as <br>
func EscapeMultiline(input string) string {
	lines := newlineRegex.Split(input, -1)
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return strings.Join(lines, "<br>")
}

// SingleLine collapses all whitespace, including line breaks, so the value
// is safe for a mail header
func SingleLine(input string) string {
	safe := whitespaceRegex.ReplaceAllString(input, " ")
	return strings.TrimSpace(safe)
}
