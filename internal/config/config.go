package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"multijack/internal/game"
)

type Config struct {
	BotToken       string
	DefaultPlayers int
	Debug          bool
	// DeckSeed is nil unless DECK_SEED is set.
	DeckSeed *int64
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		BotToken:       getenv("BOT_TOKEN"),
		DefaultPlayers: game.MinPlayers,
	}

	if v := getenv("DEFAULT_PLAYERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_PLAYERS %q: %w", v, err)
		}
		cfg.DefaultPlayers = game.ClampPlayers(n)
	}

	if v := getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	if v := getenv("DECK_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DECK_SEED %q: %w", v, err)
		}
		cfg.DeckSeed = &seed
	}

	return cfg, nil
}

func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is not set")
	}
	return nil
}

// Rand returns a source seeded from DeckSeed, or nil for the global one.
func (c *Config) Rand() *rand.Rand {
	if c.DeckSeed == nil {
		return nil
	}
	return rand.New(rand.NewSource(*c.DeckSeed))
}
