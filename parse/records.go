package parse

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
)

// Records decodes one T per non-blank line of text, splitting fields on delim
// and filling T's exported fields in declaration order (no header row).
// Leading spaces after a delimiter are ignored.
//
//	type move struct {
//		Dir   string
//		Steps int
//	}
//	moves, err := parse.Records[move]("R 4\nU 2", ' ')
func Records[T any](text string, delim rune) ([]T, error) {
	r := csv.NewReader(strings.NewReader(strings.Join(Lines(text), "\n")))
	r.Comma = delim
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	var out []T
	if err := gocsv.UnmarshalCSVWithoutHeaders(r, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecords, err)
	}
	return out, nil
}
