package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Account AccountConfig `mapstructure:"account"`
	Market  MarketConfig  `mapstructure:"market"`
	Cron    CronConfig    `mapstructure:"cron"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

// AccountConfig identifies the single demo account and its seed funds.
// There is no auth; every request acts as this user.
type AccountConfig struct {
	UserID      string  `mapstructure:"user_id"`
	BalanceID   string  `mapstructure:"balance_id"`
	SeedBalance float64 `mapstructure:"seed_balance"`
}

type MarketConfig struct {
	StrikeBand float64 `mapstructure:"strike_band"`
	StrikeStep float64 `mapstructure:"strike_step"`
}

type CronConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	PortfolioSnapshot string `mapstructure:"portfolio_snapshot"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("OD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("account.user_id", "1")
	v.SetDefault("account.balance_id", "bal1")
	v.SetDefault("account.seed_balance", 100000)
	v.SetDefault("market.strike_band", 1000)
	v.SetDefault("market.strike_step", 100)
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.portfolio_snapshot", "@every 1h")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
