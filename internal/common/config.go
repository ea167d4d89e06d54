package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Extract  ExtractConfig
	Watcher  WatcherConfig
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

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds text-acquisition configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
}

// ExtractConfig holds field-extraction policy. These values are plumbed
// explicitly into the engine at call time; nothing reads them globally.
type ExtractConfig struct {
	Strategy        string // "rules" | "ai"
	OCRSubstitution bool
	GeminiModel     string
	GeminiAPIKey    string
	GeminiTimeout   time.Duration
}

// WatcherConfig holds folder-watcher configuration. CompanyID names
// the tenant that watched documents are ingested under.
type WatcherConfig struct {
	Roots     []string
	CompanyID string
	Debounce  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
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
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "por"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Extract: ExtractConfig{
			Strategy:        getEnv("EXTRACT_STRATEGY", "rules"),
			OCRSubstitution: getEnvAsBool("EXTRACT_OCR_SUBSTITUTION", true),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
			GeminiTimeout:   getEnvAsDuration("GEMINI_TIMEOUT", 45*time.Second),
		},
		Watcher: WatcherConfig{
			Roots:     getEnvAsList("WATCH_ROOTS"),
			CompanyID: getEnv("WATCH_COMPANY_ID", ""),
			Debounce:  getEnvAsDuration("WATCH_DEBOUNCE", 2*time.Second),
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Extract.Strategy != "rules" && c.Extract.Strategy != "ai" {
		return NewAppError("CONFIG_ERROR", "EXTRACT_STRATEGY must be rules or ai", ErrInvalidInput)
	}
	if c.Extract.Strategy == "ai" && c.Extract.GeminiAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required for the ai strategy", ErrInvalidInput)
	}
	if len(c.Watcher.Roots) > 0 && c.Watcher.CompanyID == "" {
		return NewAppError("CONFIG_ERROR", "WATCH_COMPANY_ID is required when WATCH_ROOTS is set", ErrInvalidInput)
	}
	return nil
}
