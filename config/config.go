package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// placeholderSecrets are values that must never be accepted as a signing key.
// Shipping with one of these would make every token forgeable.
var placeholderSecrets = map[string]bool{
	"secret":                true,
	"changeme":              true,
	"your-super-secret-key": true,
}

var (
	ErrMissingJWTSecret     = errors.New("JWT_SECRET is required and must not be empty")
	ErrPlaceholderJWTSecret = errors.New("JWT_SECRET is a placeholder value, refusing to start")
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env file is fine when everything comes from the environment.
	_ = viper.ReadInConfig()

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
	}

	if config.App.Port == "" {
		config.App.Port = "5000"
	}

	if err := config.JWT.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects missing or placeholder signing secrets at startup.
func (c JWTConfig) Validate() error {
	if c.Secret == "" {
		return ErrMissingJWTSecret
	}
	if placeholderSecrets[c.Secret] {
		return ErrPlaceholderJWTSecret
	}
	return nil
}
