// Package generator produces memorable (word-based) and random
// (character-based) passwords and records every generated password in an
// append-only log.
//
// Word sampling and case selection run on a seedable, non-cryptographic
// PRNG, while digit suffixes and random password characters are drawn from
// a cryptographically secure source. The split mirrors the program this
// tool replaced and is kept as-is.
package generator

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	mathrand "math/rand"
	"time"

	"github.com/sethvargo/go-password/password"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"passforge/pkg/passlog"
	"passforge/pkg/wordlist"
)

// Config wires a Generator to its word pool, random sources, and logbooks.
type Config struct {
	// Pool is a static word pool for memorable passwords. When non-empty it
	// takes precedence over WordlistPath.
	Pool []string

	// WordlistPath points to a word file loaded (and cached) on demand, the
	// first time a memorable password is requested. WordlistLimit optionally
	// truncates the pool to a prefix.
	WordlistPath  string
	WordlistLimit int

	// Rand drives word sampling, case selection, and the stress driver's
	// parameter choices. Seeded from the clock when nil.
	Rand *mathrand.Rand

	// CryptoRand is the secure source for digit suffixes and random password
	// characters. Defaults to crypto/rand.
	CryptoRand io.Reader

	// MemorableLog and RandomLog receive one line per generated password.
	MemorableLog *passlog.Logbook
	RandomLog    *passlog.Logbook
}

// Generator implements the two password modes. It is not safe for
// concurrent use; each CLI invocation owns exactly one Generator.
type Generator struct {
	pool          []string
	wordlistPath  string
	wordlistLimit int
	words         *wordlist.Loader

	rnd    *mathrand.Rand
	secure io.Reader
	digits *password.Generator
	title  cases.Caser

	memorableLog *passlog.Logbook
	randomLog    *passlog.Logbook
}

func New(cfg Config) (*Generator, error) {
	if cfg.MemorableLog == nil || cfg.RandomLog == nil {
		return nil, ErrMissingLogbook
	}

	rnd := cfg.Rand
	if rnd == nil {
		rnd = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}

	secure := cfg.CryptoRand
	if secure == nil {
		secure = cryptorand.Reader
	}

	digits, err := password.NewGenerator(&password.GeneratorInput{Reader: secure})
	if err != nil {
		return nil, fmt.Errorf("create digit generator: %w", err)
	}

	words, err := wordlist.NewLoader(0)
	if err != nil {
		return nil, err
	}

	return &Generator{
		pool:          cfg.Pool,
		wordlistPath:  cfg.WordlistPath,
		wordlistLimit: cfg.WordlistLimit,
		words:         words,
		rnd:           rnd,
		secure:        secure,
		digits:        digits,
		title:         cases.Title(language.English),
		memorableLog:  cfg.MemorableLog,
		randomLog:     cfg.RandomLog,
	}, nil
}

// wordPool resolves the memorable word pool: the static pool when present,
// otherwise the configured word list file through the cached loader.
func (g *Generator) wordPool() ([]string, error) {
	if len(g.pool) > 0 {
		return g.pool, nil
	}
	if g.wordlistPath == "" {
		return nil, ErrMissingWordPool
	}
	return g.words.Load(g.wordlistPath, g.wordlistLimit)
}
