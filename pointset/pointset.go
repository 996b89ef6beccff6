// SPDX-License-Identifier: MIT
// Package pointset: CSV ingest/egress for point datasets and result matrices.

package pointset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/symnmf/matrix"
)

var (
	// ErrEmptyInput indicates a dataset with no rows at all.
	ErrEmptyInput = errors.New("pointset: empty input")

	// ErrRaggedInput indicates rows with differing field counts.
	ErrRaggedInput = errors.New("pointset: ragged rows")

	// ErrBadNumber indicates a field that does not parse as a float.
	ErrBadNumber = errors.New("pointset: non-numeric field")
)

// Operation name constants for unified error wrapping.
const (
	opReadPoints  = "ReadPoints"
	opWriteMatrix = "WriteMatrix"
)

// pointsetErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching sentinels.
func pointsetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ReadPoints parses a comma-separated dataset: one point per line, float
// coordinates, no header. All rows must have the same width.
//
// Implementation:
//   - Stage 1: csv.Reader with the field count locked to the first row.
//   - Stage 2: strconv.ParseFloat per trimmed field, collecting [][]float64.
//   - Stage 3: matrix.NewDenseFromRows over the collected rows.
//
// Errors:
//   - ErrEmptyInput for a rowless stream; ErrRaggedInput when a row's width
//     differs from the first row's; ErrBadNumber (with row/column position)
//     for unparsable fields; underlying reader errors pass through wrapped.
//
// Complexity: O(n·d) time and space for n points of dimension d.
func ReadPoints(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0 // lock to the first row's width

	var rows [][]float64
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, pointsetErrorf(opReadPoints,
					fmt.Errorf("row %d: %w", line, ErrRaggedInput))
			}
			return nil, pointsetErrorf(opReadPoints, err)
		}

		row := make([]float64, len(record))
		for col, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, pointsetErrorf(opReadPoints,
					fmt.Errorf("row %d, field %d (%q): %w", line, col+1, field, ErrBadNumber))
			}
			row[col] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, pointsetErrorf(opReadPoints, ErrEmptyInput)
	}

	pts, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, pointsetErrorf(opReadPoints, err)
	}

	return pts, nil
}

// ReadPointsFile opens path and delegates to ReadPoints.
func ReadPointsFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pointsetErrorf(opReadPoints, err)
	}
	defer f.Close()

	return ReadPoints(f)
}

// WriteMatrix renders m to w, one row per line, entries fixed to four
// decimal places and joined with commas — the module's canonical result
// format.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m; element access and writer errors
//     pass through wrapped.
//
// Complexity: O(r·c) time, O(c) transient memory per row.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return pointsetErrorf(opWriteMatrix, err)
	}

	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		sb.Reset()
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return pointsetErrorf(opWriteMatrix, err)
			}
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', 4, 64))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return pointsetErrorf(opWriteMatrix, err)
		}
	}

	return nil
}

// FormatMatrix returns WriteMatrix's rendering of m as a string.
func FormatMatrix(m matrix.Matrix) (string, error) {
	var sb strings.Builder
	if err := WriteMatrix(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}
