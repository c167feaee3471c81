package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{"DATABASE_URI": "postgres://db"}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("unexpected token ttl %v", cfg.TokenTTL)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.AuthRateLimit != defaultAuthRateLimit || cfg.AuthRateBurst != defaultAuthRateBurst {
		t.Fatalf("unexpected rate limits %v/%d", cfg.AuthRateLimit, cfg.AuthRateBurst)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error without database URI")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":     "postgres://db",
		"RUN_ADDRESS":      ":9090",
		"JWT_SECRET":       "env-secret",
		"TOKEN_TTL":        "2h",
		"SHUTDOWN_TIMEOUT": "3s",
		"AUTH_RATE_LIMIT":  "5",
		"AUTH_RATE_BURST":  "9",
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":9090" || cfg.JWTSecret != "env-secret" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.TokenTTL != 2*time.Hour || cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("duration overrides not applied: %+v", cfg)
	}
	if cfg.AuthRateLimit != 5 || cfg.AuthRateBurst != 9 {
		t.Fatalf("rate overrides not applied: %+v", cfg)
	}
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":7070", "-jwt-secret", "flag-secret", "-token-ttl", "45m"},
		lookupFrom(map[string]string{
			"DATABASE_URI": "postgres://db",
			"RUN_ADDRESS":  ":9090",
			"JWT_SECRET":   "env-secret",
		}),
	)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("expected flag address, got %q", cfg.RunAddress)
	}
	if cfg.JWTSecret != "flag-secret" {
		t.Fatalf("expected flag secret, got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 45*time.Minute {
		t.Fatalf("expected flag ttl, got %v", cfg.TokenTTL)
	}
}

func TestLoadJWTSecretFile(t *testing.T) {
	dir := t.TempDir()
	secretFile := filepath.Join(dir, "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://db",
		"JWT_SECRET_FILE": secretFile,
	}))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("expected secret from file, got %q", cfg.JWTSecret)
	}

	if _, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://db",
		"JWT_SECRET_FILE": filepath.Join(dir, "missing"),
	})); err == nil {
		t.Fatal("expected error for missing secret file")
	}
}

func TestLoadInvalidDurations(t *testing.T) {
	if _, err := load([]string{"-token-ttl", "bogus"}, lookupFrom(map[string]string{"DATABASE_URI": "postgres://db"})); err == nil {
		t.Fatal("expected error for invalid token ttl")
	}
	if _, err := load([]string{"-shutdown-timeout", "bogus"}, lookupFrom(map[string]string{"DATABASE_URI": "postgres://db"})); err == nil {
		t.Fatal("expected error for invalid shutdown timeout")
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	cfg, err := load(
		[]string{"-token-ttl", "-1h", "-auth-rps", "-1", "-auth-burst", "0"},
		lookupFrom(map[string]string{"DATABASE_URI": "postgres://db"}),
	)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("expected fallback ttl, got %v", cfg.TokenTTL)
	}
	if cfg.AuthRateLimit != defaultAuthRateLimit || cfg.AuthRateBurst != defaultAuthRateBurst {
		t.Fatalf("expected fallback rate limits, got %v/%d", cfg.AuthRateLimit, cfg.AuthRateBurst)
	}
}
