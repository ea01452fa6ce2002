// Package config loads the tablebill driver configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "TABLEBILL"
	DefaultName    = ".tablebill"
	defaultAPIURL  = "http://localhost:4000"
	defaultTableID = 12
)

type Config struct {
	APIURL     string        `mapstructure:"api_url" validate:"required,url"`
	TableID    int32         `mapstructure:"table_id" validate:"gt=0"`
	Restaurant string        `mapstructure:"restaurant" validate:"required"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Retries    int           `mapstructure:"retries" validate:"gte=0,lte=5"`
	RetryDelay time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	AuditLog   string        `mapstructure:"audit_log" validate:"required"`
	Orders     []OrderLine   `mapstructure:"orders" validate:"dive"`
	Archive    Archive       `mapstructure:"archive"`
}

// OrderLine is one order the session command places, in configured order.
type OrderLine struct {
	MenuID   int32 `mapstructure:"menu_id" validate:"gt=0"`
	Quantity int32 `mapstructure:"quantity" validate:"gt=0"`
}

// Archive enables uploading rendered receipts to S3 when Bucket is set.
type Archive struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region" validate:"required_with=Bucket"`
	Prefix string `mapstructure:"prefix"`
}

func (a Archive) Enabled() bool {
	return a.Bucket != ""
}

var validate = validator.New()

// SetDefaults registers every key so environment overrides apply to all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("table_id", defaultTableID)
	v.SetDefault("restaurant", "Hotel Annapurna")
	v.SetDefault("timeout", "10s")
	v.SetDefault("retries", 2)
	v.SetDefault("retry_delay", "500ms")
	v.SetDefault("audit_log", "order_log.txt")
	v.SetDefault("orders", []map[string]any{
		{"menu_id": 5, "quantity": 2},
		{"menu_id": 6, "quantity": 3},
	})
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.region", "")
	v.SetDefault("archive.prefix", "receipts")
}

// Load reads cfgFile, or $HOME/.tablebill.yaml when cfgFile is empty, applies
// TABLEBILL_* environment overrides and validates the result. A missing
// default file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(DefaultName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if cfg.AuditLog != "" {
		cfg.AuditLog = filepath.Clean(cfg.AuditLog)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ObjectKey is where an archived receipt for billID is stored.
func (a Archive) ObjectKey(billID string) string {
	prefix := strings.Trim(a.Prefix, "/")
	if prefix == "" {
		return billID + ".txt"
	}
	return prefix + "/" + billID + ".txt"
}
