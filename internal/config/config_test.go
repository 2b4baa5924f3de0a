package config

import (
	"os"
	"testing"

	"github.com/dshills/dosimetria/internal/dosimetry"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "DOSIMETRIA_PROFILE")
	unsetenv(t, "DOSIMETRIA_FINE_POLICY")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Profile != "cp-br" {
		t.Errorf("profile = %q, want cp-br", cfg.Profile)
	}

	p, dc, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "cp-br" {
		t.Errorf("resolved profile = %q", p.Name)
	}
	if dc.FinePolicy != dosimetry.FineUnclamped {
		t.Errorf("fine policy = %q, want unclamped", dc.FinePolicy)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DOSIMETRIA_PROFILE", "cp-br-fine-clamped")
	unsetenv(t, "DOSIMETRIA_FINE_POLICY")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	_, dc, err := Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if dc.FinePolicy != dosimetry.FineClamped {
		t.Errorf("fine policy = %q, want clamped", dc.FinePolicy)
	}
}

func TestResolveOverride(t *testing.T) {
	_, dc, err := Resolve(Config{Profile: "cp-br", FinePolicy: "clamped"})
	if err != nil {
		t.Fatal(err)
	}
	if dc.FinePolicy != dosimetry.FineClamped {
		t.Errorf("fine policy = %q, want clamped", dc.FinePolicy)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown profile", Config{Profile: "nowhere"}},
		{"bad policy", Config{Profile: "cp-br", FinePolicy: "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Resolve(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}
