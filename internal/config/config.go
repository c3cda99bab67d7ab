package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	LogFile       string `env:"LOG_FILE"`

	JWTUserSecret string `env:"JWT_SECRET"`

	StripeSecretKey      string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret  string `env:"STRIPE_WEBHOOK_SECRET"`
	OnboardingRefreshURL string `env:"ONBOARDING_REFRESH_URL" envDefault:"https://paylink.app/onboarding/refresh"`
	OnboardingReturnURL  string `env:"ONBOARDING_RETURN_URL"  envDefault:"https://paylink.app/onboarding/return"`
	BusinessURL          string `env:"BUSINESS_URL"           envDefault:"https://paylink.app"`

	PushGatewayURL  string `env:"PUSH_GATEWAY_URL"  envDefault:"https://exp.host"`
	PushAccessToken string `env:"PUSH_ACCESS_TOKEN"`
	NotifierWorkers uint   `env:"NOTIFIER_WORKERS"  envDefault:"4"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	PayoutInterval time.Duration `env:"PAYOUT_INTERVAL" envDefault:"1h"`
}

// LoadConfig собирает конфигурацию из .env файла (если есть), переменных окружения и флагов.
// Переменные окружения приоритетнее флагов.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set"))
	}
	if c.JWTUserSecret == "" {
		errs = append(errs, errors.New("jwt secret is not set"))
	}
	if c.StripeSecretKey == "" {
		errs = append(errs, errors.New("stripe secret key is not set"))
	}
	if c.StripeWebhookSecret == "" {
		errs = append(errs, errors.New("stripe webhook secret is not set"))
	}
	return errors.Join(errs...)
}

// String скрывает секреты при логировании конфигурации.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s LogFile:%s RedisAddr:%s PushGatewayURL:%s NotifierWorkers:%d "+
			"PayoutInterval:%s}",
		c.RunAddress, c.MigrationsDir, c.LogFile, c.RedisAddr, c.PushGatewayURL, c.NotifierWorkers, c.PayoutInterval,
	)
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.LogFile, "l", "", "Log file path, stdout only if empty")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	merged := *envConfig
	merged.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	merged.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	merged.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	merged.LogFile = defaultIfBlank(envConfig.LogFile, flagsConfig.LogFile)
	return &merged
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
