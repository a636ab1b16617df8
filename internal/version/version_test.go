package version

import (
	"strings"
	"testing"
)

func TestBuildInfoString(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{
			name: "development build",
			info: BuildInfo{Version: "dev", BuildTime: "unknown", GitCommit: "unknown", GoVersion: "go1.24", Platform: "linux/amd64"},
			want: "dev (development build, go1.24, linux/amd64)",
		},
		{
			name: "release build",
			info: BuildInfo{Version: "v1.2.0", BuildTime: "2026-10-01T12:30:00Z", GitCommit: "0123456789abcdef"},
			want: "v1.2.0 (built 2026-10-01 12:30:00 UTC, commit 01234567)",
		},
		{
			name: "short commit",
			info: BuildInfo{Version: "v1.2.0", BuildTime: "2026-10-01T12:30:00Z", GitCommit: "abc"},
			want: "v1.2.0 (built 2026-10-01 12:30:00 UTC, commit abc)",
		},
		{
			name: "unparseable build time",
			info: BuildInfo{Version: "v1.2.0", BuildTime: "yesterday", GitCommit: "abc"},
			want: "v1.2.0 (built yesterday, commit abc)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfoUsesBuildVariables(t *testing.T) {
	if got := Info(); !strings.HasPrefix(got, Version) {
		t.Errorf("Info() = %q, want prefix %q", got, Version)
	}
}
