package generator

import "errors"

var (
	ErrMissingLogbook   = errors.New("missing logbook")
	ErrMissingWordPool  = errors.New("no word pool or word list path configured")
	ErrInvalidWordCount = errors.New("word count must be at least 1")
	ErrPoolExhausted    = errors.New("word count exceeds the available pool")
	ErrInvalidCase      = errors.New("unknown case mode")
	ErrInvalidLength    = errors.New("length must be at least 1")
	ErrEmptyAlphabet    = errors.New("no characters available to generate password")
)
