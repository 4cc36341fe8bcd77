package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkthedog.yaml")
	body := "scale: 2\ndebug: true\nseed: 11\nscript: select.tengo\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("WALKTHEDOG_SEED", "42")
	t.Setenv("WALKTHEDOG_VOLUME", "0.25")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scale != 2 || !cfg.Debug || cfg.Script != "select.tengo" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Seed != 42 {
		t.Fatalf("env should override the file seed, got %d", cfg.Seed)
	}
	if cfg.Volume != 0.25 {
		t.Fatalf("expected volume 0.25, got %v", cfg.Volume)
	}
	if cfg.SampleRate != Default().SampleRate {
		t.Fatalf("unset values should keep defaults, got %d", cfg.SampleRate)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("scale: [1"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad_env", func(t *testing.T) {
		t.Setenv("WALKTHEDOG_SEED", "not-an-int")
		_, err := Load("")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse env prefix, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "zero_scale", mutate: func(c *Config) { c.Scale = 0 }, want: ErrScale},
		{name: "loud", mutate: func(c *Config) { c.Volume = 1.5 }, want: ErrVolume},
		{name: "negative_volume", mutate: func(c *Config) { c.Volume = -0.1 }, want: ErrVolume},
		{name: "no_sample_rate", mutate: func(c *Config) { c.SampleRate = 0 }, want: ErrSampleRate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
