// SPDX-License-Identifier: MIT
// Package: genops/numfile

package numfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadVector reads every number in r, in order, ignoring line structure.
func ReadVector(r io.Reader) ([]float64, error) {
	rows, err := readRows("ReadVector", r)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, row := range rows {
		out = append(out, row...)
	}

	return out, nil
}

// ReadMatrix reads one row per non-blank line.
func ReadMatrix(r io.Reader) ([][]float64, error) {
	rows, err := readRows("ReadMatrix", r)
	if err != nil {
		return nil, err
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ReadMatrix: row %d has %d columns, want %d: %w", i+1, len(row), width, ErrRagged)
		}
	}

	return rows, nil
}

// LoadVector opens path and calls ReadVector.
func LoadVector(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadVector: %w", err)
	}
	defer f.Close()

	v, err := ReadVector(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// LoadMatrix opens path and calls ReadMatrix.
func LoadMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMatrix: %w", err)
	}
	defer f.Close()

	m, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// readRows returns the numbers of every data line; line numbers in errors are 1-based.
func readRows(method string, r io.Reader) ([][]float64, error) {
	var (
		sc   = bufio.NewScanner(r)
		rows [][]float64
		line int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: line %d: %q: %w", method, line, tok, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrEmpty)
	}

	return rows, nil
}
