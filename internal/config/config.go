package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Upstream struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"upstream"`

	Session struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"session"`

	Admin struct {
		// bcrypt hash of the elevation code; the plaintext never leaves config
		CodeHash string `mapstructure:"code_hash"`
	} `mapstructure:"admin"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 4100)
	v.SetDefault("upstream.base_url", "https://api.horplus.work")
	v.SetDefault("upstream.timeout_seconds", 15)
	v.SetDefault("session.expiration_hours", 12)
	v.SetDefault("session.issuer", "horplus-console")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// The two SPA builds hard-coded either the hosted or the local API host.
	// One configured URL replaces both.
	if base := os.Getenv("HORPLUS_API_URL"); base != "" {
		cfg.Upstream.BaseURL = base
	}
	if timeout := os.Getenv("HORPLUS_API_TIMEOUT"); timeout != "" {
		if n, err := strconv.Atoi(timeout); err == nil && n > 0 {
			cfg.Upstream.TimeoutSeconds = n
		}
	}

	if cfg.Session.Secret == "" || cfg.Session.Secret == "${SESSION_SECRET}" {
		cfg.Session.Secret = os.Getenv("SESSION_SECRET")
		if cfg.Session.Secret == "" {
			log.Fatal("SESSION_SECRET not found in environment or config file")
		}
	}

	if cfg.Admin.CodeHash == "" || cfg.Admin.CodeHash == "${ADMIN_CODE_HASH}" {
		cfg.Admin.CodeHash = os.Getenv("ADMIN_CODE_HASH")
		if cfg.Admin.CodeHash == "" {
			log.Fatal("ADMIN_CODE_HASH not found in environment or config file")
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}

	return &cfg
}
