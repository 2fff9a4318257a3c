package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "lpnb.yaml"

// Config CLI 配置
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	DefaultLanguage string `yaml:"default_language"`
	MarkupLanguage  string `yaml:"markup_language"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "console"
	return cfg
}

// LoadConfig 读取 YAML 配置，缺失的文件不是错误
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, err
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if level := os.Getenv("LPNB_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("LPNB_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if lang := os.Getenv("LPNB_DEFAULT_LANGUAGE"); lang != "" {
		cfg.DefaultLanguage = lang
	}

	return cfg, nil
}
