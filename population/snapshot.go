// SPDX-License-Identifier: MIT
// Package: genops/population

package population

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Snapshot is a population at a single point in time. Qualities[i] belongs to
// Individuals[i]; higher is better.
type Snapshot struct {
	Individuals [][]int
	Qualities   []float64
}

// Summary describes the quality distribution of a snapshot.
// StdDev is the population (not sample) standard deviation.
type Summary struct {
	Size   int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// New returns a snapshot over the given slices, which are not copied.
func New(individuals [][]int, qualities []float64) (Snapshot, error) {
	s := Snapshot{Individuals: individuals, Qualities: qualities}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}

// Validate reports ErrEmpty or ErrShape.
func (s Snapshot) Validate() error {
	if len(s.Individuals) != len(s.Qualities) {
		return fmt.Errorf("Validate: %d individuals, %d qualities: %w", len(s.Individuals), len(s.Qualities), ErrShape)
	}
	if len(s.Individuals) == 0 {
		return fmt.Errorf("Validate: %w", ErrEmpty)
	}

	return nil
}

// Len returns the number of individuals.
func (s Snapshot) Len() int { return len(s.Individuals) }

// Stats summarizes the qualities.
//
// Complexity: O(n).
func (s Snapshot) Stats() (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, fmt.Errorf("Stats: %w", err)
	}
	mean, std := stat.PopMeanStdDev(s.Qualities, nil)
	if len(s.Qualities) == 1 {
		std = 0
	}

	return Summary{
		Size:   len(s.Qualities),
		Min:    floats.Min(s.Qualities),
		Max:    floats.Max(s.Qualities),
		Mean:   mean,
		StdDev: std,
	}, nil
}

// Best returns the index of the highest quality; the first one wins ties.
func (s Snapshot) Best() (int, error) {
	if err := s.Validate(); err != nil {
		return -1, fmt.Errorf("Best: %w", err)
	}

	return floats.MaxIdx(s.Qualities), nil
}

// WriteTo writes one line per individual: its genes followed by its quality,
// separated by single spaces. The output is readable with numfile.ReadMatrix
// when all individuals have the same length.
func (s Snapshot) WriteTo(w io.Writer) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("WriteTo: %w", err)
	}
	var (
		bw  = bufio.NewWriter(w)
		n   int64
		buf []byte
	)
	for i, genes := range s.Individuals {
		buf = buf[:0]
		for _, g := range genes {
			buf = strconv.AppendInt(buf, int64(g), 10)
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, s.Qualities[i], 'g', -1, 64)
		buf = append(buf, '\n')
		m, err := bw.Write(buf)
		n += int64(m)
		if err != nil {
			return n, fmt.Errorf("WriteTo: row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("WriteTo: %w", err)
	}

	return n, nil
}
