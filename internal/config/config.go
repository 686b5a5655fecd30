package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	ResponderAddress string
	ResponderTimeout time.Duration
	DatabaseURI      string
	RedisAddress     string
	KafkaBrokers     []string
	KafkaTopic       string
	ShutdownTimeout  time.Duration

	ProgressTickInterval time.Duration
	ProgressMaxStep      float64

	LedgerMinLatency time.Duration
	LedgerMaxLatency time.Duration
	TopUpAmount      int
	WithdrawAmount   int
	StartingBalance  int

	GreetingDelay     time.Duration
	TypingDelay       time.Duration
	SystemUpdateDelay time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultResponderAddress     = "http://localhost:4000"
	defaultResponderTimeout     = 10 * time.Second
	defaultKafkaTopic           = "presto_events"
	defaultShutdownTimeout      = 10 * time.Second
	defaultProgressTickInterval = 3 * time.Second
	defaultProgressMaxStep      = 1.5
	defaultLedgerMinLatency     = 800 * time.Millisecond
	defaultLedgerMaxLatency     = 1600 * time.Millisecond
	defaultTopUpAmount          = 1000
	defaultWithdrawAmount       = 500
	defaultStartingBalance      = 500
	defaultGreetingDelay        = time.Second
	defaultTypingDelay          = 1500 * time.Millisecond
	defaultSystemUpdateDelay    = 8 * time.Second
)

// Load reads an optional .env file, then parses environment variables and flags.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		ResponderAddress:     getString(lookup, "RESPONDER_ADDRESS", defaultResponderAddress),
		ResponderTimeout:     getDuration(lookup, "RESPONDER_TIMEOUT", defaultResponderTimeout),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		RedisAddress:         getString(lookup, "REDIS_ADDRESS", ""),
		KafkaTopic:           getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ProgressTickInterval: getDuration(lookup, "PROGRESS_TICK_INTERVAL", defaultProgressTickInterval),
		ProgressMaxStep:      getFloat(lookup, "PROGRESS_MAX_STEP", defaultProgressMaxStep),
		LedgerMinLatency:     getDuration(lookup, "LEDGER_MIN_LATENCY", defaultLedgerMinLatency),
		LedgerMaxLatency:     getDuration(lookup, "LEDGER_MAX_LATENCY", defaultLedgerMaxLatency),
		TopUpAmount:          getInt(lookup, "TOPUP_AMOUNT", defaultTopUpAmount),
		WithdrawAmount:       getInt(lookup, "WITHDRAW_AMOUNT", defaultWithdrawAmount),
		StartingBalance:      getInt(lookup, "STARTING_BALANCE", defaultStartingBalance),
		GreetingDelay:        getDuration(lookup, "GREETING_DELAY", defaultGreetingDelay),
		TypingDelay:          getDuration(lookup, "TYPING_DELAY", defaultTypingDelay),
		SystemUpdateDelay:    getDuration(lookup, "SYSTEM_UPDATE_DELAY", defaultSystemUpdateDelay),
	}

	fs := flag.NewFlagSet("presto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		responderTimeoutStr = cfg.ResponderTimeout.String()
		shutdownTimeoutStr  = cfg.ShutdownTimeout.String()
		tickIntervalStr     = cfg.ProgressTickInterval.String()
		kafkaBrokersStr     = getString(lookup, "KAFKA_BROKERS", "")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for preferences")
	fs.StringVar(&cfg.ResponderAddress, "r", cfg.ResponderAddress, "Chat responder base URL")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for preferences")
	fs.StringVar(&kafkaBrokersStr, "kafka-brokers", kafkaBrokersStr, "Comma separated Kafka brokers")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic for domain events")
	fs.StringVar(&responderTimeoutStr, "responder-timeout", responderTimeoutStr, "Chat responder request timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&tickIntervalStr, "tick-interval", tickIntervalStr, "Order progress tick interval")
	fs.IntVar(&cfg.StartingBalance, "balance", cfg.StartingBalance, "Wallet balance of new sessions")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ResponderTimeout, err = time.ParseDuration(responderTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid responder timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ProgressTickInterval, err = time.ParseDuration(tickIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid tick interval: %w", err)
	}

	cfg.KafkaBrokers = splitList(kafkaBrokersStr)
	normalize(cfg)

	if cfg.ResponderAddress == "" {
		return nil, fmt.Errorf("responder address must be provided")
	}

	return cfg, nil
}

func normalize(cfg *Config) {
	if cfg.ResponderTimeout <= 0 {
		cfg.ResponderTimeout = defaultResponderTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.ProgressTickInterval <= 0 {
		cfg.ProgressTickInterval = defaultProgressTickInterval
	}
	if cfg.ProgressMaxStep <= 0 {
		cfg.ProgressMaxStep = defaultProgressMaxStep
	}
	if cfg.LedgerMinLatency <= 0 {
		cfg.LedgerMinLatency = defaultLedgerMinLatency
	}
	if cfg.LedgerMaxLatency <= 0 {
		cfg.LedgerMaxLatency = defaultLedgerMaxLatency
	}
	if cfg.LedgerMaxLatency < cfg.LedgerMinLatency {
		cfg.LedgerMaxLatency = cfg.LedgerMinLatency
	}
	if cfg.TopUpAmount <= 0 {
		cfg.TopUpAmount = defaultTopUpAmount
	}
	if cfg.WithdrawAmount <= 0 {
		cfg.WithdrawAmount = defaultWithdrawAmount
	}
	if cfg.StartingBalance < 0 {
		cfg.StartingBalance = defaultStartingBalance
	}
	if cfg.GreetingDelay <= 0 {
		cfg.GreetingDelay = defaultGreetingDelay
	}
	if cfg.TypingDelay <= 0 {
		cfg.TypingDelay = defaultTypingDelay
	}
	if cfg.SystemUpdateDelay <= 0 {
		cfg.SystemUpdateDelay = defaultSystemUpdateDelay
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
