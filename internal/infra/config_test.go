package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LEADERBOARD_GROUP_BY", "")
	t.Setenv("SEED_DEMO_DATA", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.DemoMode() {
		t.Fatal("empty DATABASE_URL should select demo mode")
	}
	if cfg.LeaderboardGroupBy != "team" {
		t.Fatalf("LeaderboardGroupBy default mismatch: %q", cfg.LeaderboardGroupBy)
	}
	if !cfg.SeedDemoData {
		t.Fatal("SeedDemoData should default to true")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing SESSION_SECRET")
	}
}

func TestLoadConfigRejectsUnknownGroupBy(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("LEADERBOARD_GROUP_BY", "department")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported LEADERBOARD_GROUP_BY")
	}
}

func TestLoadConfigDatabaseModeAndOrigins(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LEADERBOARD_GROUP_BY", "user")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DemoMode() {
		t.Fatal("DATABASE_URL set should disable demo mode")
	}
	if cfg.LeaderboardGroupBy != "user" {
		t.Fatalf("LeaderboardGroupBy mismatch: %q", cfg.LeaderboardGroupBy)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
}
