package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec int `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec  int `mapstructure:"idle_timeout_sec"`
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
}

// Security carries the token protocol knobs and the bootstrap account used by
// the first-boot seeder.
type Security struct {
	TokenKey          string `mapstructure:"token_key"`
	TokenType         string `mapstructure:"token_type"` // Authorization header prefix
	Separator         string `mapstructure:"separator"`
	AuthoritiesKey    string `mapstructure:"authorities_key"`
	ValidityMin       int    `mapstructure:"validity_min"`
	BootstrapEmail    string `mapstructure:"bootstrap_email"`
	BootstrapPassword string `mapstructure:"bootstrap_password"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min"`
	AutoMigrate        bool   `mapstructure:"auto_migrate"`
	LogLevel           string `mapstructure:"log_level"`
}

type Config struct {
	App      App
	Log      Log
	Security Security
	DB       DB
	Redis    Redis `mapstructure:"redis"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("security.token_type", "Bearer")
	v.SetDefault("security.separator", ":")
	v.SetDefault("security.authorities_key", "authorities")
	v.SetDefault("security.validity_min", 60)
	v.SetDefault("security.bootstrap_email", "root@gmail.com")
	v.SetDefault("security.bootstrap_password", "root")

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	if c.Security.TokenKey == "" {
		log.Fatal("security.token_key is required")
	}
	return &c
}
