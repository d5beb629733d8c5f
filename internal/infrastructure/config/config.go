package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App            AppConfig         `mapstructure:"app"`
	Server         ServerConfig      `mapstructure:"server"`
	Spoonacular    SpoonacularConfig `mapstructure:"spoonacular"`
	Cache          CacheConfig       `mapstructure:"cache"`
	Redis          RedisConfig       `mapstructure:"redis"`
	StaticDir      string            `mapstructure:"static_dir"`
	RequestTimeout time.Duration     `mapstructure:"request_timeout"`
	LogLevel       string            `mapstructure:"log_level"`
	LogFile        string            `mapstructure:"log_file"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// SpoonacularConfig 上游食譜 API 配置
type SpoonacularConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SearchLimit int           `mapstructure:"search_limit"`
	DetailLimit int           `mapstructure:"detail_limit"`
}

// Configured 回報是否已設定 API Key
func (s SpoonacularConfig) Configured() bool {
	return strings.TrimSpace(s.APIKey) != ""
}

// CacheConfig 緩存配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RedisConfig Redis 配置，Addr 為空時使用記憶體快取
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// .env 不存在時直接使用環境變數
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	// 設定預設值
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定環境變量
	bindings := map[string]string{
		"app.env":                  "APP_ENV",
		"app.debug":                "APP_DEBUG",
		"server.port":              "PORT",
		"spoonacular.api_key":      "SPOONACULAR_API_KEY",
		"spoonacular.base_url":     "SPOONACULAR_BASE_URL",
		"spoonacular.timeout":      "SPOONACULAR_TIMEOUT",
		"spoonacular.search_limit": "SPOONACULAR_SEARCH_LIMIT",
		"spoonacular.detail_limit": "SPOONACULAR_DETAIL_LIMIT",
		"cache.enabled":            "CACHE_ENABLED",
		"cache.ttl":                "CACHE_TTL",
		"cache.max_size":           "CACHE_MAX_SIZE",
		"redis.addr":               "REDIS_ADDR",
		"redis.password":           "REDIS_PASSWORD",
		"redis.db":                 "REDIS_DB",
		"static_dir":               "STATIC_DIR",
		"request_timeout":          "REQUEST_TIMEOUT",
		"log_level":                "LOG_LEVEL",
		"log_file":                 "LOG_FILE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// 解析設定
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func MaskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 應用程式設定
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.version", "2.0.0")
	v.SetDefault("app.name", "smarty-chef")

	// 伺服器設定
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.max_body_bytes", 1<<20)

	// Spoonacular 設定
	v.SetDefault("spoonacular.api_key", "")
	v.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	v.SetDefault("spoonacular.timeout", "10s")
	v.SetDefault("spoonacular.search_limit", 8)
	v.SetDefault("spoonacular.detail_limit", 5)

	// 快取設定
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_size", 500)
	v.SetDefault("cache.ttl", "6h")
	v.SetDefault("cache.cleanup_interval", "10m")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("static_dir", "web")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "logs/app.log")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes")
	}

	// 驗證上游設定；API Key 缺少時只警告，不阻止啟動
	if config.Spoonacular.BaseURL == "" {
		return fmt.Errorf("spoonacular base url is required")
	}
	if config.Spoonacular.Timeout <= 0 {
		return fmt.Errorf("invalid spoonacular timeout")
	}
	if config.Spoonacular.SearchLimit <= 0 {
		return fmt.Errorf("invalid spoonacular search limit")
	}
	if config.Spoonacular.DetailLimit <= 0 || config.Spoonacular.DetailLimit > config.Spoonacular.SearchLimit {
		return fmt.Errorf("invalid spoonacular detail limit")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request timeout")
	}

	return nil
}
