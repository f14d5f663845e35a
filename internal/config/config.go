package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	ListenAddr   string        `yaml:"listen_addr"`
	APIBaseURL   string        `yaml:"api_base_url"`
	MediaBaseURL string        `yaml:"media_base_url"` // static-asset host resolving image refs
	LogLevel     string        `yaml:"log_level"`
	LogJSON      bool          `yaml:"log_json"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	SeedPosts    bool          `yaml:"seed_posts"` // include the built-in filler posts

	MaxImageBytes int64 `yaml:"max_image_bytes"` // composer upload limit
}

func defaults() Config {
	return Config{
		ListenAddr:    ":8081",
		APIBaseURL:    "http://localhost:8000",
		MediaBaseURL:  "http://localhost:8000/Images",
		LogLevel:      "info",
		ReadTimeout:   5 * time.Second,
		WriteTimeout:  10 * time.Second,
		SeedPosts:     true,
		MaxImageBytes: 20 << 20,
	}
}

// MustLoad reads the config file and panics on any failure.
// Missing fields keep their defaults.
func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	cfg := defaults()
	if err := yaml.Unmarshal(configFile, &cfg); err != nil {
		panic("can't unmarshal config file")
	}
	return &cfg
}
