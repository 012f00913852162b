package version

import (
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	if info.Version == "" {
		t.Error("version should not be empty")
	}
	if info.GoVersion == "" {
		t.Error("go version should not be empty")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("platform should be os/arch, got: %s", info.Platform)
	}
}

func TestString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		Commit:    "abcdef1234567890",
		Date:      "2026-01-01",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}

	s := info.String()
	if !strings.Contains(s, "barhop 1.2.3") {
		t.Errorf("expected version in string, got: %s", s)
	}
	if !strings.Contains(s, "abcdef12") || strings.Contains(s, "abcdef1234567890") {
		t.Errorf("expected shortened commit, got: %s", s)
	}
}

func TestShort(t *testing.T) {
	info := Info{Version: "1.2.3"}
	if info.Short() != "1.2.3" {
		t.Errorf("expected 1.2.3, got: %s", info.Short())
	}
}
