package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/stats"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("datakit", args, io.Discard)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Tolerance != stats.DefaultTolerance {
		t.Errorf("Tolerance = %g, want %g", cfg.Tolerance, stats.DefaultTolerance)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, DefaultListenAddr)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.Interactive || cfg.TUI || cfg.Serve || cfg.JSON || cfg.Quiet {
		t.Errorf("mode flags should default to false: %+v", cfg)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t, "-values", "1, 2, 3", "-tolerance", "1e-6", "-q", "-o", "report.txt")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Values != "1, 2, 3" {
		t.Errorf("Values = %q", cfg.Values)
	}
	if cfg.Tolerance != 1e-6 {
		t.Errorf("Tolerance = %g, want 1e-6", cfg.Tolerance)
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want true via shorthand")
	}
	if cfg.OutputFile != "report.txt" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "-h")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"TOLERANCE", "1e-7")
	t.Setenv(EnvPrefix+"TIMEOUT", "5s")
	t.Setenv(EnvPrefix+"QUIET", "yes")

	t.Run("env applies when flag unset", func(t *testing.T) {
		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Tolerance != 1e-7 {
			t.Errorf("Tolerance = %g, want env override 1e-7", cfg.Tolerance)
		}
		if cfg.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want env override 5s", cfg.Timeout)
		}
		if !cfg.Quiet {
			t.Error("Quiet = false, want env override true")
		}
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		cfg, err := parse(t, "-tolerance", "1e-3")
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Tolerance != 1e-3 {
			t.Errorf("Tolerance = %g, want flag value 1e-3", cfg.Tolerance)
		}
	})
}

func TestValidate(t *testing.T) {
	base := AppConfig{
		Tolerance:  stats.DefaultTolerance,
		Timeout:    DefaultTimeout,
		ListenAddr: DefaultListenAddr,
		Theme:      "dark",
	}

	cases := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid defaults", func(*AppConfig) {}, false},
		{"zero tolerance allowed", func(c *AppConfig) { c.Tolerance = 0 }, false},
		{"negative tolerance", func(c *AppConfig) { c.Tolerance = -1e-9 }, true},
		{"zero timeout", func(c *AppConfig) { c.Timeout = 0 }, true},
		{"two modes", func(c *AppConfig) { c.Interactive = true; c.Serve = true }, true},
		{"values and input", func(c *AppConfig) { c.Values = "1"; c.InputFile = "f" }, true},
		{"values with serve", func(c *AppConfig) { c.Serve = true; c.Values = "1" }, true},
		{"unknown theme", func(c *AppConfig) { c.Theme = "solarized" }, true},
		{"theme none", func(c *AppConfig) { c.Theme = "none" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				var ce apperrors.ConfigError
				if !errors.As(err, &ce) {
					t.Errorf("error type = %T, want ConfigError", err)
				}
			}
		})
	}
}
