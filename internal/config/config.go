package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverREST  = "rest"
	StoreDriverMySQL = "mysql"
)

type Config struct {
	AppPort           string
	StoreDriver       string
	APIBaseURL        string
	APIToken          string
	APITimeout        time.Duration
	CacheTTL          time.Duration
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	TrustedProxies    []string
	TranslationFolder string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		StoreDriver:       parseStoreDriver(os.Getenv("STORE_DRIVER")),
		APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3001/api"), "/"),
		APIToken:          getEnv("API_TOKEN", ""),
		APITimeout:        getSeconds("API_TIMEOUT_SECONDS", 10),
		CacheTTL:          getSeconds("CACHE_TTL_SECONDS", 60),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "planner"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "planner"),
		DbName:            getEnv("MYSQL_DATABASE", "planner"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getSeconds reads a positive number of seconds, falling back on anything else.
func getSeconds(key string, fallback int) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || seconds <= 0 {
		seconds = fallback
	}
	return time.Duration(seconds) * time.Second
}

func parseStoreDriver(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), StoreDriverMySQL) {
		return StoreDriverMySQL
	}
	return StoreDriverREST
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
