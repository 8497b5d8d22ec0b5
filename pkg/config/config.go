// Package config resolves the process configuration once at startup, from defaults, an
// optional config.yaml, an optional .env file and the environment, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/cprates/discovery-lambda/pkg/handler"
)

// Config is the resolved configuration.
type Config struct {
	ServiceName string   `mapstructure:"service_name" validate:"required"`
	Debug       bool     `mapstructure:"debug"`
	LogFormat   string   `mapstructure:"log_format" validate:"oneof=text json"`
	Service     Service  `mapstructure:"service"`
	Function    Function `mapstructure:"function"`
}

// Service configures the local API server.
type Service struct {
	Addr      string `mapstructure:"addr" validate:"required,hostname_port"`
	Region    string `mapstructure:"region" validate:"required"`
	AccountID string `mapstructure:"accountId" validate:"required,numeric,len=12"`
}

// Function describes the function as the local API server exposes it.
type Function struct {
	Name string `mapstructure:"name" validate:"required,max=64"`
}

// HandlerConfig is the subset of the configuration the deployed function reads.
type HandlerConfig struct {
	ServiceName string
	Debug       bool
}

// DotEnvFile is loaded from the working directory when present.
var DotEnvFile = ".env"

var envBindings = map[string]string{
	"service_name":      "SERVICE_NAME",
	"debug":             "DEBUG",
	"log_format":        "LOG_FORMAT",
	"service.addr":      "LWS_ADDR",
	"service.region":    "AWS_REGION",
	"service.accountId": "LWS_ACCOUNT_ID",
	"function.name":     "AWS_LAMBDA_FUNCTION_NAME",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", handler.DefaultServiceName)
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "text")
	v.SetDefault("service.addr", "localhost:8080")
	v.SetDefault("service.region", "us-east-1")
	v.SetDefault("service.accountId", "000000000000")
	v.SetDefault("function.name", "discovery-api")
}

// Load resolves the configuration. paths are searched for config.yaml, defaulting to the
// working directory; a missing config file is not an error.
func Load(paths ...string) (Config, error) {

	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadHandler resolves only what the deployed function needs, from the environment. Keys
// used by the local tooling are neither read nor validated, and a DEBUG value that is not a
// boolean counts as false.
func LoadHandler() (HandlerConfig, error) {

	if err := loadDotEnv(); err != nil {
		return HandlerConfig{}, err
	}

	v := viper.New()
	v.SetDefault("service_name", handler.DefaultServiceName)
	v.SetDefault("debug", false)
	for _, key := range []string{"service_name", "debug"} {
		if err := v.BindEnv(key, envBindings[key]); err != nil {
			return HandlerConfig{}, fmt.Errorf("binding %s: %w", envBindings[key], err)
		}
	}

	return HandlerConfig{
		ServiceName: v.GetString("service_name"),
		Debug:       v.GetBool("debug"),
	}, nil
}

func loadDotEnv() error {
	err := godotenv.Load(DotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", DotEnvFile, err)
	}
	return nil
}

// FunctionArn returns the ARN the function is exposed under.
func (c Config) FunctionArn() string {
	return "arn:aws:lambda:" + c.Service.Region + ":" + c.Service.AccountID +
		":function:" + c.Function.Name
}
