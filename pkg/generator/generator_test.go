package generator

import (
	mathrand "math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"passforge/pkg/passlog"
)

func newTestGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()

	dir := t.TempDir()
	if cfg.MemorableLog == nil {
		cfg.MemorableLog = passlog.New(filepath.Join(dir, "Memorable", "Generated_Passwords.txt"))
	}
	if cfg.RandomLog == nil {
		cfg.RandomLog = passlog.New(filepath.Join(dir, "Random", "Generated_Passwords.txt"))
	}
	if cfg.Rand == nil {
		cfg.Rand = mathrand.New(mathrand.NewSource(1))
	}

	g, err := New(cfg)
	require.NoError(t, err)
	return g
}

// readLog returns the passwords logged so far, one per line.
func readLog(t *testing.T, book *passlog.Logbook) []string {
	t.Helper()

	data, err := os.ReadFile(book.Path())
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var passwords []string
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		_, pwd, err := passlog.ParseEntry(line)
		require.NoError(t, err, "unparseable log line %q", line)
		passwords = append(passwords, pwd)
	}
	return passwords
}

func TestNewRequiresLogbooks(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrMissingLogbook)
}

func TestMemorableRequiresPoolOrPath(t *testing.T) {
	g := newTestGenerator(t, Config{})

	_, err := g.Memorable(MemorableOptions{Words: 2, Case: CaseLower})
	require.ErrorIs(t, err, ErrMissingWordPool)
}
