package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultRunAddress        = ":3000"
	defaultOrderServiceURL   = "http://localhost:8080"
	defaultPaymentServiceURL = "http://localhost:8081"
	defaultLogLevel          = "info"
	defaultRefreshInterval   = 5 * time.Second
	defaultRequestTimeout    = 5 * time.Second
	defaultSessionTTL        = 30 * time.Minute
	defaultCurrencySymbol    = "₩"
	defaultMaxSessions       = 1000
)

type Config struct {
	RunAddr           string
	OrderServiceURL   string
	PaymentServiceURL string
	LogLevel          string
	RefreshInterval   time.Duration
	RequestTimeout    time.Duration
	SessionTTL        time.Duration
	MaxSessions       int
	// SessionKey is hex encoded session signing key, a random key is used when empty
	SessionKey     string
	CurrencySymbol string
}

// New returns new Config. It parses args, then environment variables override them.
func New(args []string) (*Config, error) {
	cfg := Config{}

	// initialize flags
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", defaultRunAddress, "dashboard server address")
	fs.StringVar(&cfg.OrderServiceURL, "o", defaultOrderServiceURL, "order service base URL")
	fs.StringVar(&cfg.PaymentServiceURL, "p", defaultPaymentServiceURL, "payment service base URL")
	fs.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
	fs.DurationVar(&cfg.RefreshInterval, "i", defaultRefreshInterval, "list refresh interval")
	fs.DurationVar(&cfg.RequestTimeout, "t", defaultRequestTimeout, "backend request timeout")
	fs.DurationVar(&cfg.SessionTTL, "s", defaultSessionTTL, "idle session lifetime")
	fs.IntVar(&cfg.MaxSessions, "m", defaultMaxSessions, "max live sessions")
	fs.StringVar(&cfg.SessionKey, "k", "", "hex encoded session signing key")
	fs.StringVar(&cfg.CurrencySymbol, "c", defaultCurrencySymbol, "currency symbol")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// if environment variable is set, then using it
	if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
		cfg.RunAddr = runAddrEnv
	}
	if orderURLEnv := os.Getenv("ORDER_SERVICE_URL"); orderURLEnv != "" {
		cfg.OrderServiceURL = orderURLEnv
	}
	if paymentURLEnv := os.Getenv("PAYMENT_SERVICE_URL"); paymentURLEnv != "" {
		cfg.PaymentServiceURL = paymentURLEnv
	}
	if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
		cfg.LogLevel = logLevelEnv
	}
	if sessionKeyEnv := os.Getenv("SESSION_KEY"); sessionKeyEnv != "" {
		cfg.SessionKey = sessionKeyEnv
	}
	if currencyEnv := os.Getenv("CURRENCY_SYMBOL"); currencyEnv != "" {
		cfg.CurrencySymbol = currencyEnv
	}

	if maxSessionsEnv := os.Getenv("MAX_SESSIONS"); maxSessionsEnv != "" {
		maxSessions, err := strconv.Atoi(maxSessionsEnv)
		if err != nil {
			return nil, fmt.Errorf("parse MAX_SESSIONS: %w", err)
		}
		cfg.MaxSessions = maxSessions
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{env: "REFRESH_INTERVAL", dst: &cfg.RefreshInterval},
		{env: "REQUEST_TIMEOUT", dst: &cfg.RequestTimeout},
		{env: "SESSION_TTL", dst: &cfg.SessionTTL},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", d.env, err)
		}
		*d.dst = parsed
	}

	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", cfg.RefreshInterval)
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}

	if cfg.MaxSessions <= 0 {
		return nil, fmt.Errorf("max sessions must be positive, got %d", cfg.MaxSessions)
	}

	return &cfg, nil
}
