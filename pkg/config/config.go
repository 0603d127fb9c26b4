// Package config carries the runtime settings of the passforge CLI.
package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const logFileName = "Generated_Passwords.txt"

// Config is loaded from the environment. The defaults reproduce the
// historical layout: logs under the working directory, the noun pool read
// from top_english_nouns_lower_100000.txt next to the binary.
type Config struct {
	DataDir       string `env:"PASSFORGE_DATA_DIR" envDefault:"."`
	WordlistPath  string `env:"PASSFORGE_WORDLIST" envDefault:"top_english_nouns_lower_100000.txt"`
	WordlistLimit int    `env:"PASSFORGE_WORDLIST_LIMIT" envDefault:"0"`
	LogLevel      string `env:"PASSFORGE_LOG_LEVEL" envDefault:"info"`
}

var dotenvOnce sync.Once

// Load parses the environment into a Config, after a best-effort load of a
// local .env file.
func Load() (Config, error) {
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// MemorableLogPath is the append-only log for word-based passwords.
func (c Config) MemorableLogPath() string {
	return filepath.Join(c.DataDir, "Memorable", logFileName)
}

// RandomLogPath is the append-only log for character-based passwords.
func (c Config) RandomLogPath() string {
	return filepath.Join(c.DataDir, "Random", logFileName)
}
