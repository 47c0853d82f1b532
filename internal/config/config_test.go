package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() вернул ошибку: %v", err)
	}

	if config.Port != "9999" {
		t.Errorf("Port = %q, ожидалось %q", config.Port, "9999")
	}
	if config.IfcgBaseURL != "https://www.ifcg.ru" {
		t.Errorf("IfcgBaseURL = %q, ожидалось %q", config.IfcgBaseURL, "https://www.ifcg.ru")
	}
	if config.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v, ожидалось %v", config.FetchTimeout, 30*time.Second)
	}
	if config.RateLimitRPS != 1.0 {
		t.Errorf("RateLimitRPS = %v, ожидалось 1.0", config.RateLimitRPS)
	}
	if !config.CacheEnabled {
		t.Error("CacheEnabled должен быть true по умолчанию")
	}
	if config.CacheTTL != 24*time.Hour {
		t.Errorf("CacheTTL = %v, ожидалось %v", config.CacheTTL, 24*time.Hour)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("IFCG_BASE_URL", "http://localhost:9000")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CACHE_ENABLED", "false")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() вернул ошибку: %v", err)
	}

	if config.Port != "8080" {
		t.Errorf("Port = %q, ожидалось %q", config.Port, "8080")
	}
	if config.IfcgBaseURL != "http://localhost:9000" {
		t.Errorf("IfcgBaseURL = %q, ожидалось %q", config.IfcgBaseURL, "http://localhost:9000")
	}
	if config.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, ожидалось %v", config.FetchTimeout, 5*time.Second)
	}
	if config.RateLimitRPS != 2.5 {
		t.Errorf("RateLimitRPS = %v, ожидалось 2.5", config.RateLimitRPS)
	}
	if config.CacheEnabled {
		t.Error("CacheEnabled должен быть false")
	}
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "не-длительность")
	t.Setenv("RATE_LIMIT_RPS", "abc")
	t.Setenv("CACHE_ENABLED", "может быть")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() вернул ошибку: %v", err)
	}

	if config.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v, ожидалось значение по умолчанию", config.FetchTimeout)
	}
	if config.RateLimitRPS != 1.0 {
		t.Errorf("RateLimitRPS = %v, ожидалось значение по умолчанию", config.RateLimitRPS)
	}
	if !config.CacheEnabled {
		t.Error("CacheEnabled должен откатиться к значению по умолчанию true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"корректная конфигурация", func(c *Config) {}, false},
		{"пустой port", func(c *Config) { c.Port = "" }, true},
		{"нечисловой port", func(c *Config) { c.Port = "восемь" }, true},
		{"пустой base url", func(c *Config) { c.IfcgBaseURL = "" }, true},
		{"нулевой таймаут", func(c *Config) { c.FetchTimeout = 0 }, true},
		{"отрицательный rps", func(c *Config) { c.RateLimitRPS = -1 }, true},
		{"нулевой ttl при включённом кэше", func(c *Config) { c.CacheTTL = 0 }, true},
		{"нулевой ttl при выключенном кэше", func(c *Config) { c.CacheEnabled = false; c.CacheTTL = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				Port:         "9999",
				IfcgBaseURL:  "https://www.ifcg.ru",
				FetchTimeout: 30 * time.Second,
				RateLimitRPS: 1.0,
				CacheEnabled: true,
				CacheTTL:     24 * time.Hour,
			}
			tt.mutate(config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
