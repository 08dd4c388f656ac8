package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Dataset  DatasetConfig
	Auth     AuthConfig
	Analysis AnalysisConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatasetConfig struct {
	ClinVarPath string
}

type AuthConfig struct {
	APIKey string
}

type AnalysisConfig struct {
	Workers         int
	QueueSize       int
	DownloadTimeout time.Duration
	CallbackTimeout time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("CLINVAR_PATH", "/app/data/clinvar_alleles.tsv")
	v.SetDefault("ANALYSIS_SERVICE_API_KEY", "dev-key")
	v.SetDefault("ANALYSIS_WORKERS", 4)
	v.SetDefault("ANALYSIS_QUEUE_SIZE", 64)
	v.SetDefault("DOWNLOAD_TIMEOUT", "120s")
	v.SetDefault("CALLBACK_TIMEOUT", "60s")
	v.SetDefault("ANALYZE_RATE_LIMIT", 5.0)
	v.SetDefault("ANALYZE_RATE_BURST", 10)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	downloadTimeout, err := time.ParseDuration(v.GetString("DOWNLOAD_TIMEOUT"))
	if err != nil {
		downloadTimeout = 120 * time.Second
	}

	callbackTimeout, err := time.ParseDuration(v.GetString("CALLBACK_TIMEOUT"))
	if err != nil {
		callbackTimeout = 60 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Dataset: DatasetConfig{
			ClinVarPath: v.GetString("CLINVAR_PATH"),
		},
		Auth: AuthConfig{
			APIKey: v.GetString("ANALYSIS_SERVICE_API_KEY"),
		},
		Analysis: AnalysisConfig{
			Workers:         v.GetInt("ANALYSIS_WORKERS"),
			QueueSize:       v.GetInt("ANALYSIS_QUEUE_SIZE"),
			DownloadTimeout: downloadTimeout,
			CallbackTimeout: callbackTimeout,
			RateLimitRPS:    v.GetFloat64("ANALYZE_RATE_LIMIT"),
			RateLimitBurst:  v.GetInt("ANALYZE_RATE_BURST"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
