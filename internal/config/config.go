package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr    = ":8080"
	defaultJWTAccessTTL  = "24h"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultCacheTTL      = "30s"
	defaultCachePrefix   = "hotelops"
	defaultGatewayURL    = "https://api.paystack.co"
	defaultCurrency      = "NGN"
	defaultMailBuffer    = "64"
	defaultCORSOrigins   = "*"
)

type Config struct {
	AppEnv      string
	ListenAddr  string
	DatabaseDSN string

	JWTSecret    string
	JWTAccessTTL time.Duration

	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration
	CachePrefix   string

	GatewayBaseURL   string
	GatewaySecretKey string
	Currency         string

	MailBuffer int

	CORSOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseDSN = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.CacheTTL, err = parseDurationEnv("CACHE_TTL", defaultCacheTTL)
	if err != nil {
		return nil, err
	}
	cfg.CachePrefix = getEnv("CACHE_PREFIX", defaultCachePrefix)

	cfg.GatewayBaseURL = getEnv("PAYMENT_GATEWAY_URL", defaultGatewayURL)
	cfg.GatewaySecretKey = strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_SECRET"))
	cfg.Currency = getEnv("CURRENCY", defaultCurrency)

	cfg.MailBuffer, err = parseIntEnv("MAIL_BUFFER", defaultMailBuffer)
	if err != nil {
		return nil, err
	}
	if cfg.MailBuffer <= 0 {
		return nil, fmt.Errorf("MAIL_BUFFER must be positive")
	}

	for _, o := range strings.Split(getEnv("CORS_ORIGINS", defaultCORSOrigins), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseIntEnv(name, def string) (int, error) {
	raw := getEnv(name, def)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return n, nil
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
