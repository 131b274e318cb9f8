package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir  string `yaml:"data_dir" mapstructure:"data_dir"`
	DBFile   string `yaml:"db_file" mapstructure:"db_file"`
	LogFile  string `yaml:"log_file" mapstructure:"log_file"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  dataDir(),
		DBFile:   "ppl.sqlite",
		LogFile:  "ppl.log",
		LogLevel: "info",
	}
}

// DBPath is the resolved store location.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LogPath is the resolved log location.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, c.LogFile)
}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ppl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ppl")
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ppl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ppl")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(configDir())

	viper.SetEnvPrefix("PPL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
