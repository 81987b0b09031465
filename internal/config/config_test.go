package config

import (
	"testing"
	"time"

	"github.com/openlab-uniandes/roble-go/internal/types"
)

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()
	eff, err := Resolve(Config{BaseURL: "https://roble.example.com", CodeURL: "proj"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if eff.Timeout != 30*time.Second {
		t.Fatalf("default timeout: %v", eff.Timeout)
	}
	if eff.PathBuilder == nil {
		t.Fatal("default path builder missing")
	}
	if eff.AuthHeaders == nil || eff.DataHeaders == nil {
		t.Fatal("header maps must be non-nil")
	}
}

func TestResolve_TrimsTrailingSlashes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want string
	}{
		{"https://roble.example.com", "https://roble.example.com"},
		{"https://roble.example.com/", "https://roble.example.com"},
		{"https://roble.example.com///", "https://roble.example.com"},
	}
	for _, tt := range tests {
		eff, err := Resolve(Config{BaseURL: tt.in, CodeURL: "proj"})
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.in, err)
		}
		if eff.BaseURL != tt.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tt.in, eff.BaseURL, tt.want)
		}
	}
}

func TestResolve_RequiredFields(t *testing.T) {
	t.Parallel()
	if _, err := Resolve(Config{CodeURL: "proj"}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	if _, err := Resolve(Config{BaseURL: "https://x"}); err == nil {
		t.Fatal("expected error for missing code URL")
	}
}

func TestResolve_CopiesHeaderMaps(t *testing.T) {
	t.Parallel()
	auth := map[string]string{"X-A": "1"}
	eff, err := Resolve(Config{BaseURL: "https://x", CodeURL: "proj", AuthHeaders: auth})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	auth["X-A"] = "mutated"
	if eff.AuthHeaders["X-A"] != "1" {
		t.Fatal("effective config must not alias the caller's map")
	}
}

func TestDefaultPathBuilder(t *testing.T) {
	t.Parallel()
	if got := DefaultPathBuilder(types.KindAuth, "login", "X"); got != "/auth/X/login" {
		t.Fatalf("auth path: %q", got)
	}
	if got := DefaultPathBuilder(types.KindDatabase, "read", "X"); got != "/database/X/read" {
		t.Fatalf("database path: %q", got)
	}
}

func TestResolve_KeepsCustomValues(t *testing.T) {
	t.Parallel()
	pb := func(kind types.Kind, endpoint, codeURL string) string { return "/custom" }
	eff, err := Resolve(Config{
		BaseURL:     "https://x",
		CodeURL:     "proj",
		Timeout:     5 * time.Second,
		PathBuilder: pb,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if eff.Timeout != 5*time.Second {
		t.Fatalf("custom timeout lost: %v", eff.Timeout)
	}
	if got := eff.PathBuilder(types.KindAuth, "login", "proj"); got != "/custom" {
		t.Fatalf("custom path builder lost: %q", got)
	}
}
