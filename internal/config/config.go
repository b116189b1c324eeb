// Package config lee la configuración del proceso desde el entorno.
// .env y .env.local se cargan si existen, sin pisar variables ya definidas.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"pet-finder/internal/domain/scoring"
	"pet-finder/internal/domain/users"
)

func init() {
	for _, f := range []string{".env", ".env.local"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", f, err)
		}
	}
}

type Config struct {
	Env  string
	Port string

	// Storage: DB_DSN gana sobre DATA_DIR; sin ninguno todo queda en memoria.
	DatabaseDSN string
	DataDir     string
	SeedData    bool

	NATSURL        string
	WebhookURL     string
	WebhookSecret  string
	WebhookTimeout time.Duration

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	SizeRule             scoring.SizeRule
	Weights              scoring.Weights
	DefaultAlertRadiusKm float64

	ShutdownTimeout time.Duration
}

const (
	defaultEnv             = "dev"
	defaultPort            = "8080"
	defaultS3Region        = "us-east-1"
	defaultWebhookTimeout  = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

func Load() (Config, error) {
	cfg := Config{
		Env:           env("APP_ENV", defaultEnv),
		Port:          env("PORT", defaultPort),
		DatabaseDSN:   env("DB_DSN", ""),
		DataDir:       env("DATA_DIR", ""),
		NATSURL:       env("NATS_URL", ""),
		WebhookURL:    env("WEBHOOK_URL", ""),
		WebhookSecret: env("WEBHOOK_SECRET", ""),
		S3Endpoint:    env("S3_ENDPOINT", ""),
		S3Region:      env("S3_REGION", defaultS3Region),
		S3Bucket:      env("S3_BUCKET", ""),
		S3AccessKey:   env("S3_ACCESS_KEY", ""),
		S3SecretKey:   env("S3_SECRET_KEY", ""),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("config: PORT must be numeric, got %q", cfg.Port)
	}

	var err error
	if cfg.SeedData, err = boolEnv("SEED_DATA", false); err != nil {
		return Config{}, err
	}
	if cfg.WebhookTimeout, err = durationEnv("WEBHOOK_TIMEOUT", defaultWebhookTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return Config{}, err
	}

	if cfg.SizeRule, err = scoring.ParseSizeRule(env("MATCH_SIZE_RULE", "")); err != nil {
		return Config{}, fmt.Errorf("config: MATCH_SIZE_RULE: %w", err)
	}
	if cfg.Weights, err = scoring.ParseWeights(env("MATCH_WEIGHTS", "")); err != nil {
		return Config{}, fmt.Errorf("config: MATCH_WEIGHTS: %w", err)
	}

	cfg.DefaultAlertRadiusKm = users.DefaultAlertRadiusKm
	if v := env("DEFAULT_ALERT_RADIUS_KM", ""); v != "" {
		km, err := strconv.ParseFloat(v, 64)
		if err != nil || km < 0 || math.IsNaN(km) || math.IsInf(km, 0) {
			return Config{}, fmt.Errorf("config: DEFAULT_ALERT_RADIUS_KM must be a number >= 0, got %q", v)
		}
		cfg.DefaultAlertRadiusKm = km
	}

	if (cfg.S3AccessKey == "") != (cfg.S3SecretKey == "") {
		return Config{}, fmt.Errorf("config: S3_ACCESS_KEY and S3_SECRET_KEY go together")
	}

	return cfg, nil
}

// S3Enabled indica si las fotos se suben a un bucket.
func (c Config) S3Enabled() bool { return c.S3Bucket != "" }

// ScoringConfig arma la config de score con la regla de tamaño y los pesos elegidos.
func (c Config) ScoringConfig() scoring.Config {
	sc := scoring.DefaultConfig()
	if c.SizeRule != "" {
		sc.SizeRule = c.SizeRule
	}
	if c.Weights != (scoring.Weights{}) {
		sc.Weights = c.Weights
	}
	return sc
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func boolEnv(key string, def bool) (bool, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean, got %q", key, v)
	}
	return b, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive duration, got %q", key, v)
	}
	return d, nil
}
