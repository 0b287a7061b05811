package main

import (
	"investorshield/internal/ratelimiter"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const defaultTokenSecret = "your-secret-key"

// loadConfig reads the process environment. Invalid values are logged and
// replaced by their defaults.
func loadConfig(logger *zap.SugaredLogger) config {
	cfg := config{
		addr:        envString("ADDR", ":8080"),
		env:         envString("ENV", "development"),
		apiURL:      os.Getenv("EXTERNAL_URL"),
		frontendURL: os.Getenv("FRONTEND_URL"),
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				secret: envString("AUTH_TOKEN_SECRET", defaultTokenSecret),
				exp:    envDuration(logger, "AUTH_TOKEN_EXP", 24*time.Hour),
				iss:    "InvestorShield",
			},
		},
		rateLimiter: loadRateLimiterConfig(logger),
	}

	if cfg.auth.token.secret == defaultTokenSecret {
		logger.Warnw("AUTH_TOKEN_SECRET is not set, using the development default", "env", cfg.env)
	}
	if cfg.auth.basic.user == "" || cfg.auth.basic.pass == "" {
		logger.Warn("AUTH_BASIC_USER/AUTH_BASIC_PASS not set, admin routes will reject every request")
	}

	return cfg
}

// loadRateLimiterConfig retrieves rate limiter settings from environment variables
func loadRateLimiterConfig(logger *zap.SugaredLogger) ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: envInt(logger, "RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              envBool(logger, "RATE_LIMITER_ENABLED", false),
	}
}

func envString(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func envInt(logger *zap.SugaredLogger, key string, def int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		logger.Warnw("invalid integer in environment, using default", "key", key, "value", val, "default", def)
		return def
	}
	return parsed
}

func envBool(logger *zap.SugaredLogger, key string, def bool) bool {
	val, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		logger.Warnw("invalid boolean in environment, using default", "key", key, "value", val, "default", def)
		return def
	}
	return parsed
}

func envDuration(logger *zap.SugaredLogger, key string, def time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return def
	}
	parsed, err := time.ParseDuration(val)
	if err != nil || parsed <= 0 {
		logger.Warnw("invalid duration in environment, using default", "key", key, "value", val, "default", def)
		return def
	}
	return parsed
}
