package config

import (
	"testing"

	"github.com/caarlos0/env/v10"
)

func TestParseDefaults(t *testing.T) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.HTTP.Port != "5000" {
		t.Errorf("port = %q, want 5000", cfg.HTTP.Port)
	}
	if cfg.Bank.BaseURL != "http://localhost:6002" {
		t.Errorf("bank base url = %q", cfg.Bank.BaseURL)
	}
	if cfg.Bank.AccountNo != "123456789" {
		t.Errorf("bank account = %q", cfg.Bank.AccountNo)
	}
	if cfg.FrontendURL != "http://localhost:3002" {
		t.Errorf("frontend url = %q", cfg.FrontendURL)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9001")
	t.Setenv("BANK_BASE_URL", "https://bank.example.com")
	t.Setenv("BANK_ACCOUNT_NO", "555000111")
	t.Setenv("FRONTEND_URL", "https://bookbound.example.com")
	t.Setenv("JWT_TTL_HOURS", "12")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.HTTP.Port != "9001" {
		t.Errorf("port = %q, want 9001", cfg.HTTP.Port)
	}
	if cfg.Bank.BaseURL != "https://bank.example.com" {
		t.Errorf("bank base url = %q", cfg.Bank.BaseURL)
	}
	if cfg.Bank.AccountNo != "555000111" {
		t.Errorf("bank account = %q", cfg.Bank.AccountNo)
	}
	if cfg.FrontendURL != "https://bookbound.example.com" {
		t.Errorf("frontend url = %q", cfg.FrontendURL)
	}
	if cfg.JWT.TTLHours != 12 {
		t.Errorf("jwt ttl = %d, want 12", cfg.JWT.TTLHours)
	}
}
