package generator

import (
	"fmt"
	"strings"
)

// Case selects the letter casing applied to each sampled word.
type Case string

const (
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
	CaseTitle Case = "title"
	// CaseMixed assigns each word one of the three styles above, chosen
	// independently and uniformly at random.
	CaseMixed Case = "mixed"
)

// ParseCase maps a CLI argument onto a Case.
func ParseCase(s string) (Case, error) {
	c := Case(strings.ToLower(s))
	switch c {
	case CaseLower, CaseUpper, CaseTitle, CaseMixed:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCase, s)
	}
}

// MemorableOptions control a single memorable password generation.
type MemorableOptions struct {
	// Words is the number of pool words to join.
	Words int
	// Case is one of lower, upper, title, or mixed.
	Case Case
	// AddDigits appends one secure random digit to each word.
	AddDigits bool
}

// Memorable samples opts.Words distinct pool words, cases them, optionally
// suffixes each with a random digit, and joins them with hyphens. The
// password is appended to the memorable log before it is returned.
func (g *Generator) Memorable(opts MemorableOptions) (string, error) {
	if opts.Words <= 0 {
		return "", ErrInvalidWordCount
	}

	switch opts.Case {
	case CaseLower, CaseUpper, CaseTitle, CaseMixed:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCase, opts.Case)
	}

	pool, err := g.wordPool()
	if err != nil {
		return "", err
	}
	if opts.Words > len(pool) {
		return "", fmt.Errorf("%w: want %d words, pool has %d", ErrPoolExhausted, opts.Words, len(pool))
	}

	// Sample without replacement: no word repeats within one password.
	order := g.rnd.Perm(len(pool))

	parts := make([]string, 0, opts.Words)
	for _, idx := range order[:opts.Words] {
		word := g.caseWord(pool[idx], opts.Case)
		if opts.AddDigits {
			digit, err := g.digits.Generate(1, 1, 0, false, false)
			if err != nil {
				return "", fmt.Errorf("draw digit suffix: %w", err)
			}
			word += digit
		}
		parts = append(parts, word)
	}

	pwd := strings.Join(parts, "-")
	if err := g.memorableLog.Append(pwd); err != nil {
		return "", err
	}

	return pwd, nil
}

func (g *Generator) caseWord(word string, mode Case) string {
	switch mode {
	case CaseUpper:
		return strings.ToUpper(word)
	case CaseTitle:
		return g.title.String(word)
	case CaseMixed:
		switch g.rnd.Intn(3) {
		case 0:
			return strings.ToLower(word)
		case 1:
			return strings.ToUpper(word)
		default:
			return g.title.String(word)
		}
	default:
		return strings.ToLower(word)
	}
}
