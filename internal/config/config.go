// internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DataConfig struct {
	// File is the profitability CSV consumed by the dataset loader.
	File string
}

type AnalysisConfig struct {
	// Channels is the allowlist of sales channels of business interest.
	Channels []string
	// AlertThreshold multiplies the product-type logistics average to
	// decide the high-logistics alert. The dashboard runs 1.15, the
	// interactive CLI defaults to 1.1.
	AlertThreshold float64
	// DefaultQuantity and MinQuantity back the simulator quantity input.
	DefaultQuantity float64
	MinQuantity     float64
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "release")
		viper.SetDefault("SERVER_READ_TIMEOUT", 10)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 10)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DATA_FILE", "./data/pyg.csv")
		viper.SetDefault("ANALYSIS_CHANNELS", []string{"AU ESP", "TAT", "MY", "FS", "GS", "HD"})
		viper.SetDefault("ANALYSIS_ALERT_THRESHOLD", 1.15)
		viper.SetDefault("SIM_DEFAULT_QUANTITY", 1000.0)
		viper.SetDefault("SIM_MIN_QUANTITY", 1.0)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Data: DataConfig{
				File: viper.GetString("DATA_FILE"),
			},
			Analysis: AnalysisConfig{
				Channels:        viper.GetStringSlice("ANALYSIS_CHANNELS"),
				AlertThreshold:  viper.GetFloat64("ANALYSIS_ALERT_THRESHOLD"),
				DefaultQuantity: viper.GetFloat64("SIM_DEFAULT_QUANTITY"),
				MinQuantity:     viper.GetFloat64("SIM_MIN_QUANTITY"),
			},
		}
	})

	return instance
}
