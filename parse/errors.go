package parse

import "errors"

var (
	// ErrNotRune indicates a token that is not exactly one character.
	ErrNotRune = errors.New("parse: token is not a single rune")
	// ErrRecords indicates delimited records could not be decoded.
	ErrRecords = errors.New("parse: cannot decode records")
)
