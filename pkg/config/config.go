package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every shiftbot environment variable.
const EnvPrefix = "SHIFTBOT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App  AppConfig
	DB   DBConfig
	Bot  BotConfig
	Chat ChatConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Bot.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"SHIFTBOT_APP_ENV" default:"dev"`
	Port     string `envconfig:"SHIFTBOT_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"SHIFTBOT_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"SHIFTBOT_DB_DRIVER" default:"sqlite"`
	// DSN is the connection target: a file path for sqlite, a full
	// postgres URL otherwise.
	DSN string `envconfig:"SHIFTBOT_DB_DSN" default:"shiftbot.db"`
}

func (d DBConfig) validate() error {
	switch d.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q", d.Driver)
	}
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("database DSN is required")
	}
	return nil
}

type BotConfig struct {
	// AdminIDs is the static allow-list of administrator account ids.
	AdminIDs []int64 `envconfig:"SHIFTBOT_ADMIN_IDS" required:"true"`
}

func (b BotConfig) validate() error {
	if len(b.AdminIDs) == 0 {
		return fmt.Errorf("at least one admin id is required")
	}
	return nil
}

// IsAdminID reports whether the id is on the static admin allow-list.
func (b BotConfig) IsAdminID(id int64) bool {
	for _, admin := range b.AdminIDs {
		if admin == id {
			return true
		}
	}
	return false
}

type ChatConfig struct {
	// DeliveryURL is the chat platform endpoint outbound messages are
	// POSTed to.
	DeliveryURL string `envconfig:"SHIFTBOT_CHAT_DELIVERY_URL" required:"true"`
	// MessageLimit is the transport's maximum message length; longer
	// text is chunked before delivery.
	MessageLimit int `envconfig:"SHIFTBOT_CHAT_MESSAGE_LIMIT" default:"4000"`
}
