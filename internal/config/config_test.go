package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(nil))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.ResponderAddress != defaultResponderAddress {
		t.Errorf("expected default responder %q, got %q", defaultResponderAddress, cfg.ResponderAddress)
	}
	if cfg.ProgressTickInterval != 3*time.Second || cfg.ProgressMaxStep != 1.5 {
		t.Errorf("unexpected simulator defaults: %v %v", cfg.ProgressTickInterval, cfg.ProgressMaxStep)
	}
	if cfg.LedgerMinLatency != 800*time.Millisecond || cfg.LedgerMaxLatency != 1600*time.Millisecond {
		t.Errorf("unexpected ledger latency defaults: %v %v", cfg.LedgerMinLatency, cfg.LedgerMaxLatency)
	}
	if cfg.TopUpAmount != 1000 || cfg.WithdrawAmount != 500 || cfg.StartingBalance != 500 {
		t.Errorf("unexpected wallet defaults: %+v", cfg)
	}
	if cfg.GreetingDelay != time.Second || cfg.TypingDelay != 1500*time.Millisecond || cfg.SystemUpdateDelay != 8*time.Second {
		t.Errorf("unexpected chat delays: %v %v %v", cfg.GreetingDelay, cfg.TypingDelay, cfg.SystemUpdateDelay)
	}
	if cfg.DatabaseURI != "" || cfg.RedisAddress != "" || len(cfg.KafkaBrokers) != 0 {
		t.Errorf("expected optional backends to be empty, got %+v", cfg)
	}
	if cfg.KafkaTopic != defaultKafkaTopic {
		t.Errorf("expected default topic, got %q", cfg.KafkaTopic)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":            ":9000",
		"RESPONDER_ADDRESS":      "http://responder.local",
		"REDIS_ADDRESS":          "localhost:6379",
		"KAFKA_BROKERS":          "k1:9092, k2:9092,,",
		"PROGRESS_MAX_STEP":      "2.5",
		"TOPUP_AMOUNT":           "250",
		"SYSTEM_UPDATE_DELAY":    "4s",
		"PROGRESS_TICK_INTERVAL": "500ms",
	}

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9000" || cfg.ResponderAddress != "http://responder.local" {
		t.Errorf("unexpected addresses: %q %q", cfg.RunAddress, cfg.ResponderAddress)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Errorf("unexpected brokers: %v", cfg.KafkaBrokers)
	}
	if cfg.ProgressMaxStep != 2.5 || cfg.TopUpAmount != 250 {
		t.Errorf("unexpected numeric overrides: %v %d", cfg.ProgressMaxStep, cfg.TopUpAmount)
	}
	if cfg.SystemUpdateDelay != 4*time.Second || cfg.ProgressTickInterval != 500*time.Millisecond {
		t.Errorf("unexpected duration overrides: %v %v", cfg.SystemUpdateDelay, cfg.ProgressTickInterval)
	}
	if cfg.RedisAddress != "localhost:6379" {
		t.Errorf("unexpected redis address %q", cfg.RedisAddress)
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":   ":9000",
		"KAFKA_BROKERS": "env:9092",
	}

	args := []string{
		"-a", ":9090",
		"-d", "postgres://override",
		"-r", "http://override",
		"--redis", "redis:6379",
		"--kafka-brokers", "flag:9092",
		"--kafka-topic", "custom",
		"--responder-timeout", "3s",
		"--shutdown-timeout", "20s",
		"--tick-interval", "1s",
		"--balance", "0",
	}

	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://override" || cfg.ResponderAddress != "http://override" || cfg.RedisAddress != "redis:6379" {
		t.Errorf("unexpected address overrides: %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 1 || cfg.KafkaBrokers[0] != "flag:9092" || cfg.KafkaTopic != "custom" {
		t.Errorf("unexpected kafka overrides: %v %q", cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	if cfg.ResponderTimeout != 3*time.Second || cfg.ShutdownTimeout != 20*time.Second || cfg.ProgressTickInterval != time.Second {
		t.Errorf("unexpected durations: %v %v %v", cfg.ResponderTimeout, cfg.ShutdownTimeout, cfg.ProgressTickInterval)
	}
	if cfg.StartingBalance != 0 {
		t.Errorf("expected zero starting balance to be kept, got %d", cfg.StartingBalance)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	cases := map[string]string{
		"--responder-timeout": "invalid responder timeout",
		"--shutdown-timeout":  "invalid shutdown timeout",
		"--tick-interval":     "invalid tick interval",
	}
	for flagName, want := range cases {
		_, err := load([]string{flagName, "bad"}, lookupFrom(nil))
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("%s: expected %q error, got %v", flagName, want, err)
		}
	}

	if _, err := load([]string{"--unknown"}, lookupFrom(nil)); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestLoadNormalizesNonPositiveValues(t *testing.T) {
	env := map[string]string{
		"PROGRESS_MAX_STEP":  "0",
		"LEDGER_MIN_LATENCY": "2s",
		"LEDGER_MAX_LATENCY": "1s",
		"TOPUP_AMOUNT":       "-5",
		"WITHDRAW_AMOUNT":    "0",
		"STARTING_BALANCE":   "-1",
		"SHUTDOWN_TIMEOUT":   "0",
		"TYPING_DELAY":       "-1s",
	}

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.ProgressMaxStep != defaultProgressMaxStep {
		t.Errorf("expected default max step, got %v", cfg.ProgressMaxStep)
	}
	if cfg.LedgerMaxLatency != 2*time.Second {
		t.Errorf("expected max latency raised to min, got %v", cfg.LedgerMaxLatency)
	}
	if cfg.TopUpAmount != defaultTopUpAmount || cfg.WithdrawAmount != defaultWithdrawAmount || cfg.StartingBalance != defaultStartingBalance {
		t.Errorf("unexpected wallet normalisation: %+v", cfg)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout || cfg.TypingDelay != defaultTypingDelay {
		t.Errorf("unexpected duration normalisation: %v %v", cfg.ShutdownTimeout, cfg.TypingDelay)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PRESTO_DOTENV_PROBE=from-file\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)
	defer os.Unsetenv("PRESTO_DOTENV_PROBE")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loadDotEnv failed: %v", err)
	}
	if got := os.Getenv("PRESTO_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)

	if err := loadDotEnv(); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}

func TestLoadStub(t *testing.T) {
	if cfg := loadStub(lookupFrom(nil)); cfg.Port != 4000 || cfg.Address() != ":4000" {
		t.Fatalf("unexpected default stub config: %+v", cfg)
	}
	if cfg := loadStub(lookupFrom(map[string]string{"PORT": "5050"})); cfg.Port != 5050 {
		t.Fatalf("expected port override, got %+v", cfg)
	}
	if cfg := loadStub(lookupFrom(map[string]string{"PORT": "-1"})); cfg.Port != 4000 {
		t.Fatalf("expected invalid port to fall back, got %+v", cfg)
	}
}
