package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port                 string
	Env                  string
	CORSAllowOrigin      []string
	ModelPath            string
	ExportDir            string
	PDFEngine            string
	ChromePath           string
	RankJobOverlapWeight float64
	RankCategoryWeight   float64
	MaxSkills            int
	SessionMaxDocuments  int
	MaxSessions          int
	RateLimitRPS         float64
	RateLimitBurst       int
}

const (
	DefaultModelPath           = "model/classifier.json"
	DefaultSessionMaxDocuments = 50
	DefaultMaxSessions         = 10000
)

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:      splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ModelPath:            getEnv("MODEL_PATH", DefaultModelPath),
		ExportDir:            getEnv("EXPORT_DIR", ""),
		PDFEngine:            getEnv("PDF_ENGINE", "native"),
		ChromePath:           getEnv("CHROME_PATH", ""),
		RankJobOverlapWeight: getFloat("RANK_JOB_OVERLAP_WEIGHT", 1.0),
		RankCategoryWeight:   getFloat("RANK_CATEGORY_WEIGHT", 0.35),
		MaxSkills:            getInt("MAX_SKILLS", 12),
		SessionMaxDocuments:  getInt("SESSION_MAX_DOCUMENTS", DefaultSessionMaxDocuments),
		MaxSessions:          getInt("SESSION_MAX_COUNT", DefaultMaxSessions),
		RateLimitRPS:         getFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst:       getInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		log.Printf("config: invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return v
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		log.Printf("config: invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "test":
		return "test"
	default:
		return "dev"
	}
}
