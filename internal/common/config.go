package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Input  InputConfig
	Output OutputConfig
	Log    LogConfig
}

// InputConfig holds document-ingestion configuration
type InputConfig struct {
	Dir          string
	KeywordsFile string
}

// OutputConfig holds workbook-output configuration
type OutputConfig struct {
	File        string
	SheetName   string
	MaxColWidth float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:          getEnv("EXTRACTOR_INPUT_DIR", "reports_to_process"),
			KeywordsFile: getEnv("EXTRACTOR_KEYWORDS_FILE", ""),
		},
		Output: OutputConfig{
			File:        getEnv("EXTRACTOR_OUTPUT_FILE", "检测结果汇总表.xlsx"),
			SheetName:   getEnv("EXTRACTOR_SHEET_NAME", "检测结果汇总"),
			MaxColWidth: getEnvAsFloat64("EXTRACTOR_MAX_COL_WIDTH", 50),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return NewAppError("CONFIG_ERROR", "input directory is required", ErrInvalidInput)
	}
	if c.Output.File == "" {
		return NewAppError("CONFIG_ERROR", "output file is required", ErrInvalidInput)
	}
	return nil
}
