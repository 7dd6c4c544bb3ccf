package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Upload   UploadConfig
	DocText  DocTextConfig
	LLM      LLMConfig
	Workers  WorkerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// UploadConfig bounds what the upload endpoint accepts.
type UploadConfig struct {
	Dir         string
	MaxSizeMB   int
	MaxSize     int64 // derived: MaxSizeMB * 1MiB
	Permissions os.FileMode
}

// DocTextConfig holds document text-extraction tool paths.
type DocTextConfig struct {
	Pdftotext string
	Antiword  string
}

// LLMConfig holds structured-field extraction configuration
type LLMConfig struct {
	Model        string
	APIKey       string
	BaseURL      string
	Temperature  float32
	FieldTimeout time.Duration // per field-kind call
}

// WorkerConfig sizes the background processing pool.
type WorkerConfig struct {
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	maxMB := getEnvAsInt("MAX_FILE_SIZE_MB", 10)
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_DIR", "./uploads"),
			MaxSizeMB:   maxMB,
			MaxSize:     int64(maxMB) << 20,
			Permissions: 0o644,
		},
		DocText: DocTextConfig{
			Pdftotext: getEnv("PDFTOTEXT_PATH", "pdftotext"),
			Antiword:  getEnv("ANTIWORD_PATH", "antiword"),
		},
		LLM: LLMConfig{
			Model:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			BaseURL:      getEnv("OPENAI_BASE_URL", ""),
			Temperature:  getEnvAsFloat32("OPENAI_TEMPERATURE", 0.2),
			FieldTimeout: getEnvAsDuration("FIELD_EXTRACT_TIMEOUT", 25*time.Second),
		},
		Workers: WorkerConfig{
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:      getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 3*time.Minute),
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

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrValidation)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrValidation)
	}
	if c.Upload.MaxSizeMB <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_FILE_SIZE_MB must be positive", ErrValidation)
	}
	return nil
}
