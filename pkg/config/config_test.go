package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_WithDefaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	envVars := []string{
		"APP_NAME", "APP_ENVIRONMENT", "APP_DEBUG",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_DBNAME",
		"REDIS_HOST", "REDIS_PORT",
		"SESSION_SECRET", "SESSION_TTL", "SESSION_COOKIE_NAME",
		"LOGIN_MAX_ATTEMPTS", "LOGIN_WINDOW",
		"KAFKA_ENABLED", "KAFKA_BROKERS",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.App.Name != "elitebooker" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "elitebooker")
	}

	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want %q", cfg.App.Environment, "development")
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}

	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want %d", cfg.Redis.Port, 6379)
	}

	if cfg.Session.CookieName != "eb_session" {
		t.Errorf("Session.CookieName = %q, want %q", cfg.Session.CookieName, "eb_session")
	}

	if cfg.Session.TTL != 12*time.Hour {
		t.Errorf("Session.TTL = %v, want %v", cfg.Session.TTL, 12*time.Hour)
	}

	if cfg.Login.MaxAttempts != 10 {
		t.Errorf("Login.MaxAttempts = %d, want %d", cfg.Login.MaxAttempts, 10)
	}

	if cfg.Kafka.Enabled {
		t.Error("Kafka.Enabled should default to false")
	}
}

func TestLoad_WithEnvOverride(t *testing.T) {
	os.Setenv("APP_NAME", "test-app")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DATABASE_HOST", "db.example.com")
	os.Setenv("SESSION_COOKIE_NAME", "custom_session")
	defer func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("DATABASE_HOST")
		os.Unsetenv("SESSION_COOKIE_NAME")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "test-app" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "test-app")
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}

	if cfg.Database.Host != "db.example.com" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.example.com")
	}

	if cfg.Session.CookieName != "custom_session" {
		t.Errorf("Session.CookieName = %q, want %q", cfg.Session.CookieName, "custom_session")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn := cfg.DSN(); dsn != expected {
		t.Errorf("DSN() = %q, want %q", dsn, expected)
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{
		Host: "redis.example.com",
		Port: 6380,
	}

	expected := "redis.example.com:6380"
	if addr := cfg.Addr(); addr != expected {
		t.Errorf("Addr() = %q, want %q", addr, expected)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		App:      AppConfig{Name: "test", Environment: "development"},
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Host: "localhost", DBName: "testdb"},
		Session:  SessionConfig{Secret: "secret", TTL: time.Hour},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing app name", func(c *Config) { c.App.Name = "" }, true},
		{"invalid port", func(c *Config) { c.Server.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"missing database host", func(c *Config) { c.Database.Host = "" }, true},
		{"missing database name", func(c *Config) { c.Database.DBName = "" }, true},
		{"missing session secret", func(c *Config) { c.Session.Secret = "" }, true},
		{"zero session TTL", func(c *Config) { c.Session.TTL = 0 }, true},
		{
			"default secret in production",
			func(c *Config) {
				c.App.Environment = "production"
				c.Session.Secret = "change-me-in-production"
			},
			true,
		},
		{
			"custom secret in production",
			func(c *Config) {
				c.App.Environment = "production"
				c.Session.Secret = "real-secret"
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_EnvironmentHelpers(t *testing.T) {
	cfg := Config{App: AppConfig{Environment: "production"}}
	if !cfg.IsProduction() {
		t.Error("IsProduction() should be true")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() should be false")
	}

	cfg.App.Environment = "development"
	if cfg.IsProduction() {
		t.Error("IsProduction() should be false")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() should be true")
	}
}
