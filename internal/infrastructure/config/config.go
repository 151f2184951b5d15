package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Lookup  LookupConfig  `mapstructure:"lookup"`
	Speech  SpeechConfig  `mapstructure:"speech"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig holds the paths of the persisted dictionary and session log
type StorageConfig struct {
	DictionaryPath string `mapstructure:"dictionary_path"`
	SessionLogPath string `mapstructure:"session_log_path"`
}

// LookupConfig holds online dictionary lookup configuration
type LookupConfig struct {
	URL            string `mapstructure:"url"`
	UserAgent      string `mapstructure:"user_agent"`
	SourceLang     string `mapstructure:"source_lang"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SpeechConfig holds text-to-speech configuration
type SpeechConfig struct {
	Language string `mapstructure:"language"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Storage defaults
	viper.SetDefault("storage.dictionary_path", ".dict")
	viper.SetDefault("storage.session_log_path", ".stat")

	// Lookup defaults
	viper.SetDefault("lookup.url", "https://www.linguee.com/english-german/search")
	viper.SetDefault("lookup.user_agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/50.0.2661.102 Safari/537.36")
	viper.SetDefault("lookup.source_lang", "de")
	viper.SetDefault("lookup.timeout_seconds", 10)

	// Speech defaults
	viper.SetDefault("speech.language", "de")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// Timeout returns the lookup timeout as a duration.
func (c LookupConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
