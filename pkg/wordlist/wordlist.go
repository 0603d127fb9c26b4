// Package wordlist reads noun pools for memorable passwords from plain-text
// files, one word per line.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads the word file at path. Blank lines are skipped. A positive
// limit truncates the pool to its first limit words.
func Load(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
		if limit > 0 && len(words) == limit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}
