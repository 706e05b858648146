// Package parse turns raw puzzle input into typed collections ready for
// grid.New or direct use by solvers.
//
// What:
//
//   - Values / Optional split delimited text into []T or []*T, converting
//     each trimmed token with a caller-supplied converter.
//   - Rows splits text into rows, then each row into tokens ([][]T); an
//     empty column separator splits a row into single characters.
//   - Runes is the common character-grid case.
//   - Records decodes delimited lines into structs via gocsv, fields taken
//     in declaration order.
//
// Tokens that fail conversion are dropped by Values and Rows and kept as nil
// by Optional; blank tokens are always skipped. Only Records reports errors.
package parse
