package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mingle-app/mingle/internal/plan"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{`"30s"`, 30 * time.Second},
		{`"5m"`, 5 * time.Minute},
		{`10`, 10 * time.Second},
	}
	for _, tt := range tests {
		var d Duration
		if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.in, err)
		}
		if d.Duration != tt.want {
			t.Errorf("%s: got %v, want %v", tt.in, d.Duration, tt.want)
		}
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	for _, in := range []string{`"not-a-duration"`, `true`} {
		var d Duration
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Setenv(EnvToken, "")
	t.Setenv(EnvAPIURL, "")
	path := writeTemp(t, `{
		"api": {"url": "https://api.mingle.example", "token": "tok", "timeout": "15s"},
		"log_level": "debug",
		"default_plan": "trial"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.URL != "https://api.mingle.example" || cfg.API.Token != "tok" {
		t.Errorf("api = %+v", cfg.API)
	}
	if cfg.API.Timeout.Duration != 15*time.Second {
		t.Errorf("timeout = %v", cfg.API.Timeout)
	}
	if cfg.DefaultPlan != plan.Trial {
		t.Errorf("default plan = %q", cfg.DefaultPlan)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %v", cfg.SlogLevel())
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvToken, "")
	t.Setenv(EnvAPIURL, "")
	cfg, err := Load(writeTemp(t, `{"api": {"url": "http://localhost:8080"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.DefaultPlan != plan.Free {
		t.Errorf("default plan = %q", cfg.DefaultPlan)
	}
	if cfg.API.Timeout.Duration != 0 {
		t.Errorf("timeout = %v, want none", cfg.API.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvAPIURL, "https://staging.mingle.example")
	cfg, err := Load(writeTemp(t, `{"api": {"url": "http://localhost:8080", "token": "file"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Token != "env-token" || cfg.API.URL != "https://staging.mingle.example" {
		t.Errorf("api = %+v", cfg.API)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvToken, "")
	t.Setenv(EnvAPIURL, "")
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing url", `{"api": {}}`, "api.url is required"},
		{"bad scheme", `{"api": {"url": "ftp://x"}}`, "http(s) URL"},
		{"bad log level", `{"api": {"url": "http://x"}, "log_level": "loud"}`, "log_level"},
		{"bad plan", `{"api": {"url": "http://x"}, "default_plan": "gold"}`, "default_plan"},
		{"negative timeout", `{"api": {"url": "http://x", "timeout": "-1s"}}`, "timeout"},
		{"not json", `{`, "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
