package config

import (
	"reflect"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("KEEPALIVE_ENABLED", "")

	env, err := Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if env.PORT != 5000 {
		t.Errorf("PORT = %d, want 5000", env.PORT)
	}
	if env.DB_DRIVER != "postgres" {
		t.Errorf("DB_DRIVER = %q, want postgres", env.DB_DRIVER)
	}
	if env.DB_HOST != "localhost" || env.DB_PORT != "5432" {
		t.Errorf("DB defaults = %s:%s", env.DB_HOST, env.DB_PORT)
	}
	if !env.KEEPALIVE_ENABLED {
		t.Error("keepalive should default to enabled")
	}
}

func TestGetRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongo")
	if _, err := Get(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestAllowedOrigins(t *testing.T) {
	env := &EnviornmentVariable{
		CORS_ORIGINS:    " https://site.netlify.app, https://example.com/ ,,http://localhost:5173",
		FRONTEND_ORIGIN: "https://example.com",
	}

	want := []string{
		"http://localhost:5173",
		"https://site.netlify.app",
		"https://example.com",
	}
	if got := env.AllowedOrigins(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllowedOrigins() = %v, want %v", got, want)
	}
}

func TestKeepaliveTarget(t *testing.T) {
	tests := []struct {
		name string
		env  EnviornmentVariable
		want string
	}{
		{"explicit url", EnviornmentVariable{KEEPALIVE_URL: "https://api.example.com//", RENDER_EXTERNAL_URL: "https://render.example.com"}, "https://api.example.com/health"},
		{"render url", EnviornmentVariable{RENDER_EXTERNAL_URL: "https://render.example.com"}, "https://render.example.com/health"},
		{"localhost", EnviornmentVariable{PORT: 5000}, "http://localhost:5000/health"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.env.KeepaliveTarget(); got != tt.want {
				t.Errorf("KeepaliveTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	env := &EnviornmentVariable{DATABASE_URL: "postgres://u:p@db:5432/cms", DB_HOST: "ignored"}
	if got := env.DSN(); got != "postgres://u:p@db:5432/cms" {
		t.Errorf("DSN() = %q", got)
	}
}

func TestCloudinaryConfigured(t *testing.T) {
	env := &EnviornmentVariable{CLOUDINARY_CLOUD_NAME: "demo", CLOUDINARY_API_KEY: "key"}
	if env.CloudinaryConfigured() {
		t.Error("missing secret should not count as configured")
	}
	env.CLOUDINARY_API_SECRET = "secret"
	if !env.CloudinaryConfigured() {
		t.Error("all three credentials set should count as configured")
	}
}
