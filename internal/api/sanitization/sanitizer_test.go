package sanitization

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ana", "Ana"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{`Tom & "Jerry"`, "Tom &amp; &#34;Jerry&#34;"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeHTML(tt.in); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeMultiline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hola", "Hola"},
		{"line1\nline2", "line1<br>line2"},
		{"a\r\nb\rc", "a<br>b<br>c"},
		{"<b>\n</b>", "&lt;b&gt;<br>&lt;/b&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeMultiline(tt.in); got != tt.want {
				t.Errorf("EscapeMultiline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Consulta", "Consulta"},
		{"  Consulta  legal ", "Consulta legal"},
		{"Subject\r\nBcc: evil@example.com", "Subject Bcc: evil@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SingleLine(tt.in); got != tt.want {
				t.Errorf("SingleLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
