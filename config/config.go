// Package config загружает конфигурацию Contact Dedup Hub из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// CSV input/output
	CSV CSVConfig

	// Conflict merge policy
	Merge MergeConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool

	// LogLevel: DEBUG, INFO, WARN, ERROR
	LogLevel string
}

// CSVConfig holds tabular input/output settings.
type CSVConfig struct {
	// InputPath - путь к исходному файлу с «сырыми» контактами.
	InputPath string

	// OutputPath - путь к файлу выгрузки; ".csv" добавляется при отсутствии.
	OutputPath string

	// Delimiter - разделитель колонок.
	Delimiter rune
}

// MergeConfig holds the conflict merge policy settings.
type MergeConfig struct {
	// IgnoreFields - имена полей, исключённых из слияния
	// (first_name, last_name, middle_name, org, position, phone, email).
	IgnoreFields []string
}

// Load загружает конфигурацию из переменных окружения.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "contact-dedup-hub"),
			Environment: Environment(getEnv("APP_ENV", "development")),
			Debug:       getEnvBool("APP_DEBUG", false),
			LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		},
		CSV: CSVConfig{
			InputPath:  getEnv("PHONEBOOK_INPUT", "phonebook_raw.csv"),
			OutputPath: getEnv("PHONEBOOK_OUTPUT", "phonebook.csv"),
			Delimiter:  getEnvRune("PHONEBOOK_DELIMITER", ','),
		},
		Merge: MergeConfig{
			IgnoreFields: getEnvSlice("MERGE_IGNORE_FIELDS", nil),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации.
func (c *Config) Validate() error {
	if c.CSV.InputPath == "" {
		return fmt.Errorf("config: PHONEBOOK_INPUT cannot be empty")
	}
	if c.CSV.OutputPath == "" {
		return fmt.Errorf("config: PHONEBOOK_OUTPUT cannot be empty")
	}
	return nil
}

// IsDebug возвращает true в режиме отладки.
func (c *Config) IsDebug() bool {
	return c.App.Debug || c.App.Environment == EnvDevelopment
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvRune(key string, defaultVal rune) rune {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return []rune(val)[0]
}

func getEnvSlice(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}
