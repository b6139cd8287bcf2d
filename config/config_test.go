package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	t.Chdir(dir)
}

func TestLoad_DefaultsWithAPIKey(t *testing.T) {
	chdirTemp(t, nil)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HTTPServer.Port != 8000 {
		t.Errorf("port = %d, want 8000", cfg.HTTPServer.Port)
	}
	if cfg.GoogleCalendar.Timezone != "America/Toronto" {
		t.Errorf("timezone = %s", cfg.GoogleCalendar.Timezone)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" || cfg.GoogleCalendar.TokenPath != "token.json" {
		t.Errorf("unexpected calendar config: %+v", cfg.GoogleCalendar)
	}
	if cfg.Frontend.Origin != "http://localhost:5173" {
		t.Errorf("frontend origin = %s", cfg.Frontend.Origin)
	}
	if len(cfg.CORS.AllowedOrigins) != 4 {
		t.Errorf("expected 4 default origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Sync.DefaultTermWeeks != 16 {
		t.Errorf("default term weeks = %d", cfg.Sync.DefaultTermWeeks)
	}
	if cfg.LLM.RetryAttempts != 1 || cfg.LLM.FallbackEnabled {
		t.Errorf("expected single attempt without fallback, got %+v", cfg.LLM)
	}

	chat := cfg.LLM.Chat.Providers
	if len(chat) != 1 || chat[0].Name != "openai" || chat[0].Model != defaultChatModel || chat[0].APIKey != "sk-test" {
		t.Errorf("unexpected chat providers: %+v", chat)
	}
	extraction := cfg.LLM.Extraction.Providers
	if len(extraction) != 1 || extraction[0].Model != defaultExtractionModel {
		t.Errorf("unexpected extraction providers: %+v", extraction)
	}
}

func TestLoad_NoProviders(t *testing.T) {
	chdirTemp(t, nil)
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when no provider is configured")
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	chdirTemp(t, map[string]string{
		"config.yaml": `
http_server:
  port: 9090
google_calendar:
  timezone: UTC
llm:
  chat:
    providers:
      - name: gemini
        enabled: true
        priority: 1
        api_key: ${TEST_GEMINI_KEY}
        model: gemini-2.5-flash
  extraction:
    providers:
      - name: deepseek
        enabled: true
        priority: 2
        api_key: literal-key
        base_url: https://api.deepseek.com/v1
        model: deepseek-chat
`,
	})
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TEST_GEMINI_KEY", "g-key")
	t.Setenv("CAL_TIMEZONE", "Europe/Paris")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTPServer.Port)
	}
	if cfg.GoogleCalendar.Timezone != "Europe/Paris" {
		t.Errorf("CAL_TIMEZONE should override file, got %s", cfg.GoogleCalendar.Timezone)
	}
	if got := cfg.CORS.AllowedOrigins; len(got) != 2 || got[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", got)
	}
	if p := cfg.LLM.Chat.Providers[0]; p.APIKey != "g-key" || p.Name != "gemini" {
		t.Errorf("unexpected chat provider: %+v", p)
	}
	if p := cfg.LLM.Extraction.Providers[0]; p.APIKey != "literal-key" || p.BaseURL == "" || p.Priority != 2 {
		t.Errorf("unexpected extraction provider: %+v", p)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	chdirTemp(t, map[string]string{
		"apikey.env": "OPENAI_API_KEY=sk-from-file\n",
	})
	os.Unsetenv("OPENAI_API_KEY")
	t.Cleanup(func() { os.Unsetenv("OPENAI_API_KEY") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.LLM.Chat.Providers[0].APIKey != "sk-from-file" {
		t.Errorf("expected key from apikey.env, got %q", cfg.LLM.Chat.Providers[0].APIKey)
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMPurposeConfig
		wantErr bool
	}{
		{"empty", LLMPurposeConfig{}, true},
		{"missing model", LLMPurposeConfig{Providers: []ProviderConfig{{Name: "openai", Enabled: true, Priority: 1}}}, true},
		{"none enabled", LLMPurposeConfig{Providers: []ProviderConfig{{Name: "openai", Model: "m", Priority: 1}}}, true},
		{"duplicate priority", LLMPurposeConfig{Providers: []ProviderConfig{
			{Name: "openai", Model: "m", Enabled: true, Priority: 1},
			{Name: "gemini", Model: "g", Enabled: true, Priority: 1},
		}}, true},
		{"valid", LLMPurposeConfig{Providers: []ProviderConfig{{Name: "openai", Model: "m", Enabled: true, Priority: 1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig("chat", tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
