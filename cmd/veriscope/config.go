// cmd/veriscope/config.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config holds application configuration. All of it is immutable state set at
// startup; services receive what they need at construction instead of reading
// process-wide mutable globals.
type Config struct {
	Version string
	Port    int

	// External collaborators
	ClassifierURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	NewsAPIKey    string
	SerpAPIKey    string

	// Feature flags
	EnableAICheck        bool
	EnableNewsValidation bool
	EnableDatabase       bool

	// Storage and auth
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	TokenTTLHours int

	// Tuning
	BatchWorkers         int
	HistoryRetentionDays int
	UserAgent            string

	// Files
	ProvidersPath string
	LogPath       string
	LogLevel      LogLevel
}

// LoadConfig loads configuration from the environment, reading a .env file
// first when one is present
func LoadConfig() (*Config, error) {
	// A missing .env is fine; containers inject real env vars
	_ = godotenv.Load()

	cfg := &Config{
		Version:              GetEnvString("APP_VERSION", VERSION),
		Port:                 GetEnvInt("PORT", 8080),
		ClassifierURL:        GetEnvString("CLASSIFIER_URL", ""),
		OpenAIAPIKey:         GetEnvString("OPENAI_API_KEY", ""),
		OpenAIModel:          GetEnvString("OPENAI_MODEL", ""),
		NewsAPIKey:           GetEnvString("NEWSAPI_KEY", ""),
		SerpAPIKey:           GetEnvString("SERPAPI_KEY", ""),
		EnableAICheck:        GetEnvBool("ENABLE_AI_CHECK", false),
		EnableNewsValidation: GetEnvBool("ENABLE_NEWS_VALIDATION", true),
		EnableDatabase:       GetEnvBool("ENABLE_DATABASE", true),
		MongoURI:             GetEnvString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:        GetEnvString("MONGO_DATABASE", "veriscope"),
		JWTSecret:            GetEnvString("JWT_SECRET", ""),
		TokenTTLHours:        GetEnvInt("TOKEN_TTL_HOURS", 24),
		BatchWorkers:         GetEnvInt("BATCH_WORKERS", 4),
		HistoryRetentionDays: GetEnvInt("HISTORY_RETENTION_DAYS", 90),
		UserAgent:            GetEnvString("USER_AGENT", "Veriscope/"+VERSION),
		ProvidersPath:        GetEnvString("PROVIDERS_PATH", "config/providers.yml"),
		LogPath:              GetEnvString("LOG_PATH", "data/logs/veriscope.log"),
		LogLevel:             ParseLogLevel(GetEnvString("LOG_LEVEL", "info")),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateConfig checks the loaded configuration for fatal gaps
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return NewConfigError(ErrConfigValidation, "JWT_SECRET is required", nil)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return NewConfigError(ErrConfigValidation, fmt.Sprintf("invalid port: %d", cfg.Port), nil)
	}
	if cfg.EnableAICheck && cfg.OpenAIAPIKey == "" {
		return NewConfigError(ErrConfigValidation, "ENABLE_AI_CHECK requires OPENAI_API_KEY", nil)
	}
	return nil
}

// ProviderConfig is one cascade entry in the providers file. Order in the
// file is cascade order; reordering providers is a configuration change, not
// a code change.
type ProviderConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

type providersFile struct {
	Providers []ProviderConfig `yaml:"providers"`
}

// DefaultProviderOrder is used when no providers file exists
func DefaultProviderOrder() []ProviderConfig {
	return []ProviderConfig{
		{Name: "google_news", Enabled: true},
		{Name: "newsapi", Enabled: true},
		{Name: "serpapi", Enabled: true},
	}
}

// LoadProviderOrder reads the cascade order from a yaml file
func LoadProviderOrder(path string) ([]ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrConfigLoad, fmt.Sprintf("failed to read %s", path), err)
	}

	var parsed providersFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, NewConfigError(ErrConfigLoad, fmt.Sprintf("invalid providers file %s", path), err)
	}
	if len(parsed.Providers) == 0 {
		return nil, NewConfigError(ErrConfigValidation, "providers file lists no providers", nil)
	}

	return parsed.Providers, nil
}

// GetEnvString gets a string from environment variables with a default value
func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer from environment variables with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean from environment variables with a default value
func GetEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// ParseLogLevel maps a level name to a LogLevel, defaulting to info
func ParseLogLevel(name string) LogLevel {
	switch strings.ToLower(name) {
	case "debug":
		return LogDebug
	case "warn", "warning":
		return LogWarning
	case "error":
		return LogError
	default:
		return LogInfo
	}
}
