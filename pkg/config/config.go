package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Txrep   TxrepConfig   `mapstructure:"txrep"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	HttpPort string `mapstructure:"http_port"`
}

type TxrepConfig struct {
	Annotate     bool  `mapstructure:"annotate"`       // 编码时附加金额/时间注释
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"` // HTTP 请求体上限
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var Global Config

// Init 加载配置到 Global；path 为空时在 . 和 ./config 下查找 config.yaml
func Init(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Fatal error config file: %s \n", err)
	}
	Global = *cfg
	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Load reads the configuration without touching Global
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// 环境变量: APP_ENV, TXREP_ANNOTATE ...
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Printf("Warning: Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")

	v.SetDefault("txrep.annotate", false)
	v.SetDefault("txrep.max_body_bytes", 1<<20)

	v.SetDefault("metrics.enabled", true)
}
