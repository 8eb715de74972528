package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Auth   Auth   `yaml:"auth"`
}

type Server struct {
	Addr          string `yaml:"addr"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Auth struct {
	Secret     string `yaml:"secret"`
	TokenTTL   string `yaml:"tokenTTL"`
	BcryptCost int    `yaml:"bcryptCost"`

	// ---
	TTL time.Duration
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Auth.Secret == "" {
		return Config{}, fmt.Errorf("auth.secret must be set")
	}

	if config.Auth.TokenTTL == "" {
		config.Auth.TokenTTL = "24h"
	}
	ttl, err := time.ParseDuration(config.Auth.TokenTTL)
	if err != nil {
		return Config{}, fmt.Errorf("invalid auth.tokenTTL: %v", err)
	}
	config.Auth.TTL = ttl

	if config.Auth.BcryptCost == 0 {
		config.Auth.BcryptCost = 10
	}

	if config.Server.Addr == "" {
		config.Server.Addr = ":3001"
	}

	return config, nil
}
