package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	// Generative backend
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	AIMode        bool // default mode at startup; toggleable at runtime
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shoestore.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shoestore.log"
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		LogFile:       logFile,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		AIMode:        getBool("AI_MODE", false),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s AI_MODE=%t GEMINI_KEY_SET=%t",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.AIMode, cfg.GeminiAPIKey != "")
	return cfg
}

func getBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
