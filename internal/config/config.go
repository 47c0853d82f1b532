package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервиса
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Каталог ТН ВЭД
	IfcgBaseURL  string        `json:"ifcg_base_url"`
	UserAgent    string        `json:"user_agent"`
	FetchTimeout time.Duration `json:"fetch_timeout"`
	RateLimitRPS float64       `json:"rate_limit_rps"` // запросов в секунду к каталогу

	// Кэш тарифной информации
	CacheEnabled         bool          `json:"cache_enabled"`
	CacheTTL             time.Duration `json:"cache_ttl"`
	CacheCleanupInterval time.Duration `json:"cache_cleanup_interval"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port: getEnv("SERVER_PORT", "9999"),

		// Каталог ТН ВЭД
		IfcgBaseURL:  getEnv("IFCG_BASE_URL", "https://www.ifcg.ru"),
		UserAgent:    getEnv("FETCH_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 30*time.Second),
		RateLimitRPS: getEnvFloat("RATE_LIMIT_RPS", 1.0),

		// Кэш
		CacheEnabled:         getEnvBool("CACHE_ENABLED", true),
		CacheTTL:             getEnvDuration("CACHE_TTL", 24*time.Hour),
		CacheCleanupInterval: getEnvDuration("CACHE_CLEANUP_INTERVAL", time.Hour),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port не может быть пустым")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("некорректный port %q: %w", c.Port, err)
	}
	if c.IfcgBaseURL == "" {
		return fmt.Errorf("ifcg_base_url не может быть пустым")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout должен быть положительным")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate_limit_rps должен быть положительным")
	}
	if c.CacheEnabled && c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl должен быть положительным при включённом кэше")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool возвращает булево значение переменной окружения
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvFloat возвращает числовое значение переменной окружения
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration возвращает длительность из переменной окружения («30s», «24h»)
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
