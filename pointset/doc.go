// Package pointset reads datasets and writes result matrices in the plain
// CSV dialect the rest of the module consumes and produces:
//
//   - input — one point per line, comma-separated float coordinates, no
//     header; every line must carry the same number of fields
//   - output — one matrix row per line, entries rendered %.4f and joined
//     with commas
//
// ReadPoints parses from any io.Reader; ReadPointsFile is the file-path
// convenience. WriteMatrix streams a matrix to a writer and FormatMatrix
// returns the same rendering as a string.
//
// Parsing is strict: ragged rows, non-numeric fields and empty input are
// errors (ErrRaggedInput, ErrBadNumber, ErrEmptyInput), each wrapped with
// the offending line number where one exists.
package pointset
