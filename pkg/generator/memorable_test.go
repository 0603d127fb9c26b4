package generator

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passforge/pkg/passlog"
)

var testPool = []string{
	"apple", "bridge", "candle", "dragon", "ember",
	"forest", "garden", "harbor", "island", "jungle",
}

func TestMemorableWordCountAndUniqueness(t *testing.T) {
	g := newTestGenerator(t, Config{Pool: testPool})

	pwd, err := g.Memorable(MemorableOptions{Words: 4, Case: CaseLower})
	require.NoError(t, err)

	parts := strings.Split(pwd, "-")
	require.Len(t, parts, 4)

	seen := make(map[string]bool)
	for _, part := range parts {
		assert.Contains(t, testPool, part)
		assert.False(t, seen[part], "word %q repeated", part)
		seen[part] = true
	}
}

func TestMemorableUpperPermutation(t *testing.T) {
	pool := []string{"cat", "dog", "sun"}
	g := newTestGenerator(t, Config{Pool: pool})

	pwd, err := g.Memorable(MemorableOptions{Words: 3, Case: CaseUpper})
	require.NoError(t, err)

	parts := strings.Split(pwd, "-")
	sort.Strings(parts)
	assert.Equal(t, []string{"CAT", "DOG", "SUN"}, parts)
}

func TestMemorableTitleCase(t *testing.T) {
	g := newTestGenerator(t, Config{Pool: []string{"cat"}})

	pwd, err := g.Memorable(MemorableOptions{Words: 1, Case: CaseTitle})
	require.NoError(t, err)
	assert.Equal(t, "Cat", pwd)
}

func TestMemorableMixedCase(t *testing.T) {
	g := newTestGenerator(t, Config{Pool: testPool})

	pwd, err := g.Memorable(MemorableOptions{Words: 5, Case: CaseMixed})
	require.NoError(t, err)

	for _, part := range strings.Split(pwd, "-") {
		word := strings.ToLower(part)
		assert.Contains(t, testPool, word)
		title := strings.ToUpper(word[:1]) + word[1:]
		assert.Contains(t, []string{word, strings.ToUpper(word), title}, part)
	}
}

func TestMemorableDigitSuffix(t *testing.T) {
	g := newTestGenerator(t, Config{Pool: testPool})

	pwd, err := g.Memorable(MemorableOptions{Words: 4, Case: CaseLower, AddDigits: true})
	require.NoError(t, err)

	segment := regexp.MustCompile(`^[a-z]+[0-9]$`)
	for _, part := range strings.Split(pwd, "-") {
		assert.Regexp(t, segment, part)
		assert.Contains(t, testPool, part[:len(part)-1])
	}
}

func TestMemorableValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    MemorableOptions
		wantErr error
	}{
		{
			name:    "zero words",
			opts:    MemorableOptions{Words: 0, Case: CaseLower},
			wantErr: ErrInvalidWordCount,
		},
		{
			name:    "negative words",
			opts:    MemorableOptions{Words: -3, Case: CaseLower},
			wantErr: ErrInvalidWordCount,
		},
		{
			name:    "more words than pool",
			opts:    MemorableOptions{Words: len(testPool) + 1, Case: CaseLower},
			wantErr: ErrPoolExhausted,
		},
		{
			name:    "unknown case",
			opts:    MemorableOptions{Words: 2, Case: "camel"},
			wantErr: ErrInvalidCase,
		},
		{
			name:    "empty case",
			opts:    MemorableOptions{Words: 2, Case: ""},
			wantErr: ErrInvalidCase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, Config{Pool: testPool})

			_, err := g.Memorable(tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, readLog(t, g.memorableLog), "failed call must not log")
		})
	}
}

func TestMemorableLogsEveryCall(t *testing.T) {
	g := newTestGenerator(t, Config{Pool: testPool})

	var generated []string
	for i := 0; i < 5; i++ {
		pwd, err := g.Memorable(MemorableOptions{Words: 3, Case: CaseLower, AddDigits: true})
		require.NoError(t, err)
		generated = append(generated, pwd)
	}

	assert.Equal(t, generated, readLog(t, g.memorableLog))
}

func TestMemorableLoadsWordlistFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nouns.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\nsun\n"), 0o644))

	g := newTestGenerator(t, Config{WordlistPath: path})

	pwd, err := g.Memorable(MemorableOptions{Words: 3, Case: CaseLower})
	require.NoError(t, err)

	parts := strings.Split(pwd, "-")
	sort.Strings(parts)
	assert.Equal(t, []string{"cat", "dog", "sun"}, parts)
}

func TestMemorableWordlistLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nouns.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\nsun\n"), 0o644))

	g := newTestGenerator(t, Config{WordlistPath: path, WordlistLimit: 2})

	_, err := g.Memorable(MemorableOptions{Words: 3, Case: CaseLower})
	require.ErrorIs(t, err, ErrPoolExhausted)
}

func TestMemorableMissingWordlistFile(t *testing.T) {
	g := newTestGenerator(t, Config{WordlistPath: filepath.Join(t.TempDir(), "absent.txt")})

	_, err := g.Memorable(MemorableOptions{Words: 3, Case: CaseLower})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCase(t *testing.T) {
	for _, s := range []string{"lower", "upper", "title", "mixed", "UPPER", "Title"} {
		c, err := ParseCase(s)
		require.NoError(t, err)
		assert.Equal(t, Case(strings.ToLower(s)), c)
	}

	_, err := ParseCase("snake")
	require.ErrorIs(t, err, ErrInvalidCase)
}

func TestMemorableLogFailureAbortsCall(t *testing.T) {
	dir := t.TempDir()
	// A directory at the log path makes the append fail.
	logPath := filepath.Join(dir, "Generated_Passwords.txt")
	require.NoError(t, os.MkdirAll(logPath, 0o755))

	g := newTestGenerator(t, Config{
		Pool:         testPool,
		MemorableLog: passlog.New(logPath),
	})

	_, err := g.Memorable(MemorableOptions{Words: 2, Case: CaseLower})
	require.Error(t, err)
}
