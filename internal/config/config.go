package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Store      `yaml:"store"`
	Sessions   `yaml:"sessions"`
	Auth       `yaml:"auth"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"30s"`
	StaticDir       string        `yaml:"static_dir" env:"STATIC_DIR" env-default:"static"`
}

type Store struct {
	Backend    string `yaml:"backend" env:"STORE_BACKEND" env-default:"file"`
	UsersPath  string `yaml:"users_path" env:"USERS_PATH" env-default:"data/users.json"`
	VideosPath string `yaml:"videos_path" env:"VIDEOS_PATH" env-default:"data/videos.json"`
}

type Sessions struct {
	Backend  string        `yaml:"backend" env:"SESSION_BACKEND" env-default:"memory"`
	TTL      time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL" env-default:"redis://localhost:6379"`
}

type Auth struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// Load reads configuration from an optional yaml file plus the
// environment. A .env file in the working directory is applied first
// when present. Priority: file < env.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return &cfg, nil
}
