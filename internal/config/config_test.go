package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" {
		t.Fatal("port should have a default")
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("expected default timezone America/New_York, got %s", cfg.Timezone)
	}
	if cfg.TaxRate != 0.06 {
		t.Fatalf("expected 6%% tax rate, got %v", cfg.TaxRate)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Fatal("allowed origins should have defaults")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ALLOWED_ORIGINS", "https://keyra.example , https://admin.keyra.example")

	cfg := Load()

	if cfg.Port != "9001" {
		t.Fatalf("expected port 9001, got %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(cfg.AllowedOrigins))
	}
	if cfg.AllowedOrigins[0] != "https://keyra.example" {
		t.Fatalf("origin not trimmed: %q", cfg.AllowedOrigins[0])
	}
}
