package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// ServiceName identifies the service in health and metadata responses.
const ServiceName = "Wikipedia Contribution Assistant"

// Version is the service version reported by the root endpoint.
const Version = "1.0.0"

// Config holds the application's configuration values.
type Config struct {
	ServerPort         string
	GeminiAPIKey       string
	GeneratorModelName string
	Temperature        float32
	AllowedOrigins     []string
	LogLevel           slog.Level
	LogFormat          string
}

// LoadConfig reads configuration from environment variables and an env
// file, sets sensible defaults, and returns the resulting Config. It
// uses the Viper library to handle configuration loading and precedence.
// A missing GEMINI_API_KEY is deliberately not an error here: the client
// fails at call time instead of at startup.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	if envFile == "" {
		envFile = ".env"
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("GENERATOR_MODEL_NAME", "gemini-2.5-flash-lite")
	v.SetDefault("GENERATOR_TEMPERATURE", 0.3)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("failed to read env file, using environment only", "file", envFile, "error", err)
		}
	}

	return &Config{
		ServerPort:         v.GetString("SERVER_PORT"),
		GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
		GeneratorModelName: v.GetString("GENERATOR_MODEL_NAME"),
		Temperature:        float32(v.GetFloat64("GENERATOR_TEMPERATURE")),
		AllowedOrigins:     splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:           parseLogLevel(v.GetString("LOG_LEVEL")),
		LogFormat:          v.GetString("LOG_FORMAT"),
	}, nil
}

// splitOrigins parses a comma-separated origin allow-list.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// parseLogLevel maps a log level string onto a slog.Level, defaulting
// to info for anything unrecognized.
func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	default:
		slog.Warn("unrecognized log level, defaulting to info", "provided", raw)
		return slog.LevelInfo
	}
}
