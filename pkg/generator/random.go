package generator

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/sethvargo/go-password/password"
)

// punctuation is the printable ASCII punctuation set.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// RandomOptions control a single random password generation.
type RandomOptions struct {
	// Length is the number of characters to draw.
	Length int
	// IncludePunct adds punctuation characters to the alphabet.
	IncludePunct bool
	// Forbidden characters are removed from the alphabet.
	Forbidden string
}

// Alphabet builds the candidate character set: letters and digits, plus
// punctuation when requested, minus the forbidden characters. The result is
// deduplicated and sorted so the same inputs always yield the same alphabet.
func Alphabet(includePunct bool, forbidden string) []rune {
	source := password.LowerLetters + password.UpperLetters + password.Digits
	if includePunct {
		source += punctuation
	}

	allowed := make(map[rune]struct{}, len(source))
	for _, r := range source {
		allowed[r] = struct{}{}
	}
	for _, r := range forbidden {
		delete(allowed, r)
	}

	alphabet := make([]rune, 0, len(allowed))
	for r := range allowed {
		alphabet = append(alphabet, r)
	}
	slices.Sort(alphabet)

	return alphabet
}

// Random draws opts.Length characters uniformly and independently from the
// alphabet, every one from the secure random source. The password is
// appended to the random log before it is returned.
func (g *Generator) Random(opts RandomOptions) (string, error) {
	if opts.Length <= 0 {
		return "", ErrInvalidLength
	}

	alphabet := Alphabet(opts.IncludePunct, opts.Forbidden)
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	var b strings.Builder
	b.Grow(opts.Length)
	size := big.NewInt(int64(len(alphabet)))
	for i := 0; i < opts.Length; i++ {
		n, err := cryptorand.Int(g.secure, size)
		if err != nil {
			return "", fmt.Errorf("draw password character: %w", err)
		}
		b.WriteRune(alphabet[n.Int64()])
	}

	pwd := b.String()
	if err := g.randomLog.Append(pwd); err != nil {
		return "", err
	}

	return pwd, nil
}
