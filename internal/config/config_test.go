package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "SQLITE_PATH", "AUTH_USERS", "AUTH_TOKEN_TTL", "SEED_ARTICLES"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if got := cfg.Auth.Users["admin"]; got != "1234" {
		t.Errorf("Users[admin] = %q, want 1234", got)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if !cfg.Server.SeedArticles {
		t.Error("SeedArticles should default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("AUTH_USERS", "alice:secret, bob:hunter2")
	t.Setenv("AUTH_TOKEN_TTL", "1h")
	t.Setenv("SEED_ARTICLES", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if len(cfg.Auth.Users) != 2 || cfg.Auth.Users["bob"] != "hunter2" {
		t.Errorf("Users = %v", cfg.Auth.Users)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Server.SeedArticles {
		t.Error("SeedArticles should be false")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Driver: "sqlite", SQLitePath: "x.db", Host: "localhost", Name: "articles"},
			Auth:     AuthConfig{Users: map[string]string{"admin": "1234"}, TokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid sqlite", func(c *Config) {}, false},
		{"valid postgres", func(c *Config) { c.Database.Driver = "postgres" }, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"postgres without host", func(c *Config) { c.Database.Driver = "postgres"; c.Database.Host = "" }, true},
		{"sqlite without path", func(c *Config) { c.Database.SQLitePath = "" }, true},
		{"no users", func(c *Config) { c.Auth.Users = map[string]string{} }, true},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseUsers(t *testing.T) {
	users := parseUsers("admin:1234,broken,:nopass, carol:")
	if len(users) != 2 {
		t.Fatalf("parseUsers() = %v, want 2 entries", users)
	}
	if users["admin"] != "1234" {
		t.Errorf("admin = %q", users["admin"])
	}
	if pw, ok := users["carol"]; !ok || pw != "" {
		t.Errorf("carol = %q, %v", pw, ok)
	}

	users = parseUsers("bob: pw12 , alice:secret")
	if users["bob"] != " pw12 " {
		t.Errorf("bob = %q, password should be kept verbatim", users["bob"])
	}
	if users["alice"] != "secret" {
		t.Errorf("alice = %q", users["alice"])
	}
}

func TestLoadClient_EnvAndFile(t *testing.T) {
	t.Setenv("ARTICLES_API_URL", "http://env.example:9000/")
	t.Setenv("ARTICLES_SESSION_FILE", "/tmp/env-session.json")
	t.Setenv("ARTICLES_TIMEOUT", "")

	cfg, err := LoadClient("")
	if err != nil {
		t.Fatalf("LoadClient() error = %v", err)
	}
	if cfg.APIURL != "http://env.example:9000" {
		t.Errorf("APIURL = %q, trailing slash should be trimmed", cfg.APIURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}

	path := filepath.Join(t.TempDir(), "articles.yaml")
	content := "api_url: https://file.example\ntimeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadClient(path)
	if err != nil {
		t.Fatalf("LoadClient(file) error = %v", err)
	}
	if cfg.APIURL != "https://file.example" {
		t.Errorf("APIURL = %q, file should win", cfg.APIURL)
	}
	if cfg.SessionFile != "/tmp/env-session.json" {
		t.Errorf("SessionFile = %q, env value should survive", cfg.SessionFile)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestLoadClient_Errors(t *testing.T) {
	if _, err := LoadClient(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	t.Setenv("ARTICLES_API_URL", "ftp://nope")
	if _, err := LoadClient(""); err == nil {
		t.Error("expected error for non-http url")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("api_url: [unterminated"), 0o600)
	t.Setenv("ARTICLES_API_URL", "")
	if _, err := LoadClient(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
