package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	// loads a .env file from the working directory, if there is one
	_ "github.com/joho/godotenv/autoload"
)

const (
	EnvDepth    = "CHESSGO_DEPTH"
	EnvBot      = "CHESSGO_BOT"
	EnvColor    = "CHESSGO_COLOR"
	EnvLogLevel = "CHESSGO_LOG_LEVEL"
)

type Config struct {
	Engine EngineConfig
	Logs   LogConfig
	// Human is the colour the human player takes.
	Human chess.Color
}

type EngineConfig struct {
	Bot   string
	Depth int
}

type LogConfig struct {
	Level logrus.Level
}

func Default() *Config {
	return &Config{
		Engine: EngineConfig{Bot: "minimax", Depth: 3},
		Logs:   LogConfig{Level: logrus.InfoLevel},
		Human:  chess.White,
	}
}

// Load reads the configuration from the environment. Unset variables keep
// their defaults.
func Load() (*Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvDepth); ok {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", EnvDepth, err)
		}
		if depth < 0 {
			return nil, fmt.Errorf("config: %s must not be negative, got %d", EnvDepth, depth)
		}
		cfg.Engine.Depth = depth
	}

	if v, ok := lookup(EnvBot); ok {
		cfg.Engine.Bot = strings.ToLower(v)
	}

	if v, ok := lookup(EnvColor); ok {
		color, err := ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", EnvColor, err)
		}
		cfg.Human = color
	}

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", EnvLogLevel, err)
		}
		cfg.Logs.Level = level
	}

	return cfg, nil
}

// ParseColor accepts white/black and their one-letter forms.
func ParseColor(s string) (chess.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.NoColor, fmt.Errorf("unknown colour %q", s)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
