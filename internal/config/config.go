package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr   string
	APIBaseURL string
	APITimeout time.Duration

	DatabaseDSN    string
	AttemptLogPath string

	CORSOrigins []string

	SessionSecret string
	SessionTTL    time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads .env when present and builds the configuration from the
// environment. Missing values fall back to local development defaults.
func Load() Config {
	envErr := godotenv.Load()

	addr := envOr("HTTP_ADDR", ":5000")
	cfg := Config{
		HTTPAddr:       addr,
		APIBaseURL:     strings.TrimSuffix(envOr("API_BASE_URL", baseURLFromAddr(addr)), "/"),
		APITimeout:     envDuration("API_TIMEOUT", 10*time.Second),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		AttemptLogPath: os.Getenv("ATTEMPT_LOG_PATH"),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionTTL:     envDuration("SESSION_TTL", 12*time.Hour),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogFormat:      envOr("LOG_FORMAT", "text"),
	}

	InitLogger(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		Logger.Warn("Arquivo .env não encontrado, usando apenas variáveis de ambiente")
	}
	return cfg
}

func baseURLFromAddr(addr string) string {
	host, port, ok := strings.Cut(addr, ":")
	if !ok {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return "http://" + host + ":" + port
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	parts := strings.Split(envOr(k, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
