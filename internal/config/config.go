package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	BoardSize    int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	MaxBoardSize int    `yaml:"max-board-size" env:"MAX_BOARD_SIZE" env-default:"100"`
	FirstPlayer  string `yaml:"first-player" env:"FIRST_PLAYER" env-default:"random"`
}

// MustLoad - load configuration from the yml file at path, or from the environment alone
// when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}
