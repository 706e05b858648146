package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Int converts a base-10 integer token.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// String accepts every token unchanged.
func String(s string) (string, error) {
	return s, nil
}

// Rune accepts single-character tokens. Invalid UTF-8 is rejected; a literal
// U+FFFD is not.
func Rune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || (r == utf8.RuneError && size == 1) || size != len(s) {
		return 0, ErrNotRune
	}
	return r, nil
}

// Values splits text on sep and converts every non-blank token, dropping
// tokens conv rejects. An empty sep splits into single characters; spaces are
// then kept as tokens and only line breaks are skipped.
func Values[T any](text, sep string, conv func(string) (T, error)) []T {
	var out []T
	for _, tok := range tokens(text, sep) {
		if v, err := conv(tok); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// Optional is Values but keeps a nil entry for each rejected token.
func Optional[T any](text, sep string, conv func(string) (T, error)) []*T {
	var out []*T
	for _, tok := range tokens(text, sep) {
		v, err := conv(tok)
		if err != nil {
			out = append(out, nil)
			continue
		}
		out = append(out, &v)
	}
	return out
}

// Rows splits text on rowSep and each row with Values(row, colSep, conv).
// Rows left empty after conversion are dropped. With an empty colSep the rows
// are character rows: leading and interior spaces are cells, and only a
// trailing \r is removed.
func Rows[T any](text, rowSep, colSep string, conv func(string) (T, error)) [][]T {
	lines := tokens(text, rowSep)
	if colSep == "" {
		lines = charLines(text, rowSep)
	}
	var out [][]T
	for _, line := range lines {
		if row := Values(line, colSep, conv); len(row) > 0 {
			out = append(out, row)
		}
	}
	return out
}

// Runes reads a character grid: one row per non-blank line, one rune per cell.
// Only a trailing \r is stripped, so spaces stay cells.
func Runes(text string) [][]rune {
	var out [][]rune
	for _, line := range charLines(text, "\n") {
		out = append(out, []rune(line))
	}
	return out
}

// Lines returns the trimmed, non-blank lines of text. CRLF endings are accepted.
func Lines(text string) []string {
	return tokens(text, "\n")
}

// charLines splits text on sep, strips a trailing \r from each line and drops
// blank lines. Other whitespace is preserved.
func charLines(text, sep string) []string {
	var out []string
	for _, line := range strings.Split(text, sep) {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func tokens(text, sep string) []string {
	if sep == "" {
		var out []string
		for _, r := range text {
			if r != '\r' && r != '\n' {
				out = append(out, string(r))
			}
		}
		return out
	}
	parts := strings.Split(text, sep)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
