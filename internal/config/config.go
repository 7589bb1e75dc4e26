package config

import (
	"os"
	"strconv"
	"sync"
)

type Board struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	MaxSize int `json:"maxSize"` // upper bound for either dimension of a room's board
}

type Config struct {
	HTTPAddr string
	Env      string
	Board    Board
}

// Development reports whether verbose, human-readable logging is wanted.
func (c Config) Development() bool { return c.Env == "development" }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		Env:      getenv("APP_ENV", "production"),
		Board: Board{
			Width:   getenvInt("BOARD_WIDTH", 3),
			Height:  getenvInt("BOARD_HEIGHT", 3),
			MaxSize: getenvInt("MAX_BOARD_SIZE", 12),
		},
	}
}

var (
	once   sync.Once
	global Config
)

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() { global = Load() })
	return &global
}
