package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	APIKey     string     `yaml:"api_key" env:"API_KEY" env-default:"labcatalog-mock-api-key-2024"`
	Data       Data       `yaml:"data"`
	HTTPServer HTTPServer `yaml:"http_server"`
}

// Data points at the JSON snapshot files. Empty paths select the dataset
// embedded in the binary.
type Data struct {
	LabsFile     string `yaml:"labs_file" env:"LABS_FILE"`
	BookingsFile string `yaml:"bookings_file" env:"BOOKINGS_FILE"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
