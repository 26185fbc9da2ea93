package config

import (
	"bytes"
	"strings"

	_ "embed"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

//go:embed base.yaml
var baseConfig []byte

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production"`
}

// JwtConfig holds the token signing settings.
type JwtConfig struct {
	SecretKey       string `mapstructure:"secretkey" validate:"required,min=16"`
	Issuer          string `mapstructure:"issuer" validate:"required"`
	Audience        string `mapstructure:"audience" validate:"required"`
	LifetimeMinutes int    `mapstructure:"lifetimeminutes" validate:"required,min=1"`
}

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Jwt    JwtConfig    `mapstructure:"jwtconfig" validate:"required"`
}

// IsDevelopment reports whether the service runs in development mode, which
// enables the admin login bypass and the API documentation page.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Load reads the embedded defaults, applies PIZZASTORE_* environment
// overrides and validates the result.
func Load() (*Config, error) {
	var cfg *Config

	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(bytes.NewReader(baseConfig)); err != nil {
		return nil, err
	}

	viper.SetEnvPrefix("PIZZASTORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
