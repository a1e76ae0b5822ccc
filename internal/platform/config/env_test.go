package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port  int           `env:"BAUC_TEST_PORT" envDefault:"123"`
	Delay time.Duration `env:"BAUC_TEST_DELAY" envDefault:"2s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Delay != 2*time.Second {
		t.Fatalf("expected default delay 2s, got %v", cfg.Delay)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BAUC_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromUsesExplicitEnvironment(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, map[string]string{"BAUC_TEST_PORT": "9000", "BAUC_TEST_DELAY": "150ms"}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9000 || cfg.Delay != 150*time.Millisecond {
		t.Fatalf("cfg = %+v, want port 9000 delay 150ms", cfg)
	}

	var defaults envTestConfig
	if err := ParseEnvFrom(&defaults, nil); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if defaults.Port != 123 {
		t.Fatalf("expected default port 123, got %d", defaults.Port)
	}
}
