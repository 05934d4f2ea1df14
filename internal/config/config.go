package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lab_hours_bot/internal/logger"

	"github.com/spf13/viper"
)

// HTTP engines the serve command can run.
const (
	EngineGin = "gin"
	EngineMux = "mux"
)

// EnvPrefix prefixes environment overrides, e.g. HOURS_LEDGER_PATH.
const EnvPrefix = "HOURS"

type Config struct {
	Host   string `mapstructure:"host"`
	Port   string `mapstructure:"port"`
	Engine string `mapstructure:"engine"`
	Ledger Ledger `mapstructure:"ledger"`
	Log    Log    `mapstructure:"log"`
}

type Ledger struct {
	Path string `mapstructure:"path"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers every key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("port", "3978")
	v.SetDefault("engine", EngineGin)
	v.SetDefault("ledger.path", "hours_log.csv")
	v.SetDefault("log.level", logger.InfoLevel)
}

// Load reads file, or configs/config.yml when file is empty, on top of the
// defaults; HOURS_* env vars and flags bound to v win over both.
// Only the implicit config file may be absent.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Engine != EngineGin && c.Engine != EngineMux {
		return fmt.Errorf("unknown engine %q (want %s or %s)", c.Engine, EngineGin, EngineMux)
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p < 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if strings.TrimSpace(c.Ledger.Path) == "" {
		return errors.New("ledger.path must not be empty")
	}
	return logger.ValidateLevel(c.Log.Level)
}
