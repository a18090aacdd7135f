package app

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"long flag", []string{"--version"}, true},
		{"single dash", []string{"-version"}, true},
		{"short flag", []string{"-V"}, true},
		{"any position", []string{"-n", "3233", "--version"}, true},
		{"absent", []string{"-n", "3233"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HasVersionFlag(tt.args); got != tt.want {
				t.Errorf("HasVersionFlag(%v) = %v; want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)

	out := buf.String()
	for _, want := range []string{"factorcalc", "Commit:", "Go version:", runtime.Version()} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}

func TestGetVersionInfo(t *testing.T) {
	t.Parallel()
	info := GetVersionInfo()
	if info.Version != Version || info.Commit != Commit {
		t.Error("GetVersionInfo does not reflect the build variables")
	}
	if info.GoVersion != runtime.Version() || info.OS != runtime.GOOS {
		t.Error("GetVersionInfo does not reflect the runtime")
	}
}
