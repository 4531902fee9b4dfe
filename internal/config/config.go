// Package config loads service settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Redis     RedisConfig     `yaml:"redis"`
	Badger    BadgerConfig    `yaml:"badger"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Refresh   RefreshConfig   `yaml:"refresh"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Origin is the public site origin used when building share links.
	Origin string `yaml:"origin"`
}

// UpstreamConfig points at the hosted dashboard database REST interface.
type UpstreamConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type BadgerConfig struct {
	Path string `yaml:"path"`
}

type AnalyticsConfig struct {
	Endpoint string `yaml:"endpoint"`
	Buffer   int    `yaml:"buffer"`
}

type RefreshConfig struct {
	Schedule string `yaml:"schedule"`
}

// Load reads the YAML file at path if it exists, then applies environment
// overrides. A missing file just means defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:   ":3000",
			Origin: "http://localhost:3000",
		},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		Badger: BadgerConfig{Path: "./badger-data"},
		Analytics: AnalyticsConfig{
			Buffer: 256,
		},
		Refresh: RefreshConfig{Schedule: "*/30 * * * *"},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("VOICES_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("VOICES_ORIGIN"); v != "" {
		cfg.Server.Origin = v
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		cfg.Upstream.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("BADGER_PATH"); v != "" {
		cfg.Badger.Path = v
	}
	if v := os.Getenv("ANALYTICS_ENDPOINT"); v != "" {
		cfg.Analytics.Endpoint = v
	}

	return cfg, nil
}
