// SPDX-License-Identifier: MIT
// Package: genops/numfile

package numfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genops/numfile"
)

func TestReadVector(t *testing.T) {
	in := "# costs\n1 2.5\n\n  3   # trailing\n-4e1\n"
	v, err := numfile.ReadVector(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3, -40}, v)
}

func TestReadMatrix(t *testing.T) {
	in := "0 1 2\n# middle\n1 0 3\n2 3 0\n"
	m, err := numfile.ReadMatrix(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, m)
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"bad token", "1 2\n3 x\n", numfile.ErrParse, "line 2"},
		{"nan", "NaN\n", numfile.ErrParse, "line 1"},
		{"inf", "1\n\n+Inf\n", numfile.ErrParse, "line 3"},
		{"empty", "# nothing\n\n", numfile.ErrEmpty, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := numfile.ReadVector(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
		})
	}

	_, err := numfile.ReadMatrix(strings.NewReader("1 2\n3\n"))
	require.ErrorIs(t, err, numfile.ErrRagged)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	vec := filepath.Join(dir, "values.txt")
	mtx := filepath.Join(dir, "dist.txt")
	require.NoError(t, os.WriteFile(vec, []byte("3 4 5\n"), 0o600))
	require.NoError(t, os.WriteFile(mtx, []byte("0 2\n2 0\n"), 0o600))

	v, err := numfile.LoadVector(vec)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5}, v)

	m, err := numfile.LoadMatrix(mtx)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, m)

	_, err = numfile.LoadVector(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
