package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	Frontend   FrontendConfig
	RateLimit  RateLimitConfig

	// Course outline planner specifics
	GoogleCalendar GoogleCalendarConfig
	Sync           SyncConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type FrontendConfig struct {
	Origin string // where the OAuth callback redirects to
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string // OAuth client secrets (installed/web app JSON)
	TokenPath       string
	RedirectURL     string
	CalendarID      string
	Timezone        string
}

type SyncConfig struct {
	DefaultTermWeeks int
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
// Chat and extraction run on separate provider chains.
type LLMConfig struct {
	Chat            LLMPurposeConfig `yaml:"chat"`
	Extraction      LLMPurposeConfig `yaml:"extraction"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

type LLMPurposeConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

const (
	defaultChatModel       = "gpt-4.1-mini"
	defaultExtractionModel = "gpt-5.1"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// .env and apikey.env in the working directory are loaded into the process environment first.
func Load() (*Config, error) {
	if err := loadDotEnv(".env", "apikey.env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	cfg.Frontend.Origin = v.GetString("frontend.origin")
	if origin := v.GetString("frontend_origin"); origin != "" {
		cfg.Frontend.Origin = origin
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.RedirectURL = v.GetString("google_calendar.redirect_url")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")
	if creds := v.GetString("google_client_secrets_file"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}
	if redirect := v.GetString("oauth_redirect_uri"); redirect != "" {
		cfg.GoogleCalendar.RedirectURL = redirect
	}
	if calendarID := v.GetString("calendar_id"); calendarID != "" {
		cfg.GoogleCalendar.CalendarID = calendarID
	}
	if tz := v.GetString("cal_timezone"); tz != "" {
		cfg.GoogleCalendar.Timezone = tz
	}

	cfg.Sync.DefaultTermWeeks = v.GetInt("sync.default_term_weeks")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Chat.Providers = loadProviders(v, "llm.chat.providers")
	cfg.LLM.Extraction.Providers = loadProviders(v, "llm.extraction.providers")

	// Without a providers section an OPENAI_API_KEY alone is enough
	if apiKey := v.GetString("openai_api_key"); apiKey != "" {
		if len(cfg.LLM.Chat.Providers) == 0 {
			cfg.LLM.Chat.Providers = []ProviderConfig{defaultOpenAIProvider(apiKey, defaultChatModel)}
		}
		if len(cfg.LLM.Extraction.Providers) == 0 {
			cfg.LLM.Extraction.Providers = []ProviderConfig{defaultOpenAIProvider(apiKey, defaultExtractionModel)}
		}
	}

	if err := validateLLMConfig("chat", cfg.LLM.Chat); err != nil {
		return nil, err
	}
	if err := validateLLMConfig("extraction", cfg.LLM.Extraction); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})
	v.SetDefault("frontend.origin", "http://localhost:5173")
	v.SetDefault("rate_limit.requests_per_min", 30)

	v.SetDefault("google_calendar.credentials_path", "client_secret.json")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.redirect_url", "http://localhost:8000/api/auth/google/callback")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "America/Toronto")

	v.SetDefault("sync.default_term_weeks", 16)

	// LLM defaults: one attempt, no fallback
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "180s")
}

// loadDotEnv loads each existing file; missing files are skipped.
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading %s: %w", f, err)
		}
	}
	return nil
}

func loadProviders(v *viper.Viper, key string) []ProviderConfig {
	if !v.IsSet(key) {
		return nil
	}

	providersList, ok := v.Get(key).([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

func defaultOpenAIProvider(apiKey, model string) ProviderConfig {
	return ProviderConfig{
		Name:     "openai",
		Enabled:  true,
		Priority: 1,
		APIKey:   apiKey,
		Model:    model,
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates one provider chain
func validateLLMConfig(purpose string, cfg LLMPurposeConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured for %s - add llm.%s.providers to config.yaml or set OPENAI_API_KEY", purpose, purpose)
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("%s provider %d: name is required", purpose, i)
		}
		if provider.Model == "" {
			return fmt.Errorf("%s provider %s: model is required", purpose, provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("%s provider %s: priority must be positive", purpose, provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("%s provider %s: duplicate priority %d", purpose, provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers for %s", purpose)
	}

	return nil
}

// splitList accepts both a YAML list and a comma separated env value.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
