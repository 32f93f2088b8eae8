package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Data       DataConfig       `mapstructure:"data"`
	Banks      []BankConfig     `mapstructure:"banks"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// DataConfig locates the flat per-bank record files.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// BankConfig declares one participating bank. Exactly one bank per
// supported country.
type BankConfig struct {
	ID       string `mapstructure:"id"`
	Country  string `mapstructure:"country"`
	Currency string `mapstructure:"currency"`
	File     string `mapstructure:"file"` // JSON record file under data.dir
}

// LedgerConfig describes the external settlement contract's HTTP gateway.
type LedgerConfig struct {
	GatewayURL        string        `mapstructure:"gateway_url"`
	ContractAddress   string        `mapstructure:"contract_address"`
	Network           string        `mapstructure:"network"`
	GasLimit          uint64        `mapstructure:"gas_limit"`
	CallTimeout       time.Duration `mapstructure:"call_timeout"`
	EventPollInterval time.Duration `mapstructure:"event_poll_interval"`
}

// SettlementConfig tunes the asynchronous settlement phase.
// Rates maps "FROM_TO" currency pairs (e.g. "THB_MYR") to fixed
// conversion factors; both directions must be present.
type SettlementConfig struct {
	Delay             time.Duration      `mapstructure:"delay"`
	Workers           int                `mapstructure:"workers"`
	CompletionTimeout time.Duration      `mapstructure:"completion_timeout"`
	Rates             map[string]float64 `mapstructure:"rates"`
}

// Rate returns the conversion factor for a currency pair. Lookup is
// case-insensitive because viper lowercases map keys.
func (s SettlementConfig) Rate(from, to string) (float64, bool) {
	key := strings.ToLower(fmt.Sprintf("%s_%s", from, to))
	for k, r := range s.Rates {
		if strings.ToLower(k) == key {
			return r, true
		}
	}
	return 0, false
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"` // empty disables rate limiting
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AdminConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"` // empty leaves diagnostic endpoints open
	JWTExpiry time.Duration `mapstructure:"jwt_expiry"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CBO_ (Cross-Border
// Orchestrator). Nested keys use underscore: CBO_LEDGER_GATEWAY_URL etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("data.dir", "./data")
	v.SetDefault("banks", []map[string]interface{}{
		{"id": "THAI_BANK_001", "country": "Thailand", "currency": "THB", "file": "ThaiBank.json"},
		{"id": "MAYBANK_001", "country": "Malaysia", "currency": "MYR", "file": "Maybank.json"},
	})
	v.SetDefault("ledger.gateway_url", "http://localhost:8545")
	v.SetDefault("ledger.contract_address", "")
	v.SetDefault("ledger.network", "sepolia")
	v.SetDefault("ledger.gas_limit", 500000)
	v.SetDefault("ledger.call_timeout", "90s")
	v.SetDefault("ledger.event_poll_interval", "5s")
	v.SetDefault("settlement.delay", "3s")
	v.SetDefault("settlement.workers", 4)
	v.SetDefault("settlement.completion_timeout", "2m")
	v.SetDefault("settlement.rates", map[string]float64{
		"THB_MYR": 0.13,
		"MYR_THB": 7.69,
	})
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.jwt_expiry", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CBO_SERVER_PORT -> server.port
	v.SetEnvPrefix("CBO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional, env vars can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool)
	for _, b := range c.Banks {
		if b.ID == "" || b.Country == "" || b.Currency == "" || b.File == "" {
			return fmt.Errorf("bank config incomplete: %+v", b)
		}
		if seen[b.Country] {
			return fmt.Errorf("duplicate bank for country %s", b.Country)
		}
		seen[b.Country] = true
	}
	for _, b := range c.Banks {
		for _, other := range c.Banks {
			if b.Currency == other.Currency {
				continue
			}
			if _, ok := c.Settlement.Rate(b.Currency, other.Currency); !ok {
				return fmt.Errorf("missing exchange rate %s -> %s", b.Currency, other.Currency)
			}
		}
	}
	return nil
}
