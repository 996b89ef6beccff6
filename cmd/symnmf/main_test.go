package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDataset drops a small CSV dataset into a temp dir and returns its path.
func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// threePoints has two coincident points and one far outlier, giving
// hand-checkable similarity entries.
const threePoints = "0,0\n0,0\n10,10\n"

// TestRun_Sym checks the similarity goal's zero diagonal and the exact
// coincident-pair entry.
func TestRun_Sym(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run("sym", 2, 1234, writeDataset(t, threePoints), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0.0000,1.0000,0.0000", lines[0],
		"coincident points similarity 1, outlier ~0, zero diagonal")
	assert.Equal(t, "1.0000,0.0000,0.0000", lines[1])
	assert.Equal(t, "0.0000,0.0000,0.0000", lines[2])
}

// TestRun_DDG checks the degree goal: diagonal row sums, zeros elsewhere.
func TestRun_DDG(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run("ddg", 2, 1234, writeDataset(t, threePoints), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1.0000,0.0000,0.0000", lines[0])
	assert.Equal(t, "0.0000,1.0000,0.0000", lines[1])
	assert.Equal(t, "0.0000,0.0000,0.0000", lines[2])
}

// TestRun_Norm checks the normalization goal on the coincident pair, whose
// degrees are both 1 so the normalized entry stays 1.
func TestRun_Norm(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run("norm", 2, 1234, writeDataset(t, threePoints), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0.0000,1.0000", lines[0][:13],
		"W[0][1] = 1/sqrt(1·1) = 1")
}

// TestRun_SymNMF runs the full goal end to end on a separable dataset and
// checks only the output shape — values depend on the seeded trajectory.
func TestRun_SymNMF(t *testing.T) {
	data := "0,0\n0.2,0.1\n0.1,0.3\n4,4\n4.2,3.9\n"

	var out bytes.Buffer
	require.NoError(t, run("symnmf", 2, 1234, writeDataset(t, data), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5, "one output row per point")
	for i, line := range lines {
		assert.Len(t, strings.Split(line, ","), 2, "row %d must have k=2 entries", i)
	}
}

// TestRun_Failures covers the error paths: unknown goal, missing file,
// malformed dataset, bad rank.
func TestRun_Failures(t *testing.T) {
	path := writeDataset(t, threePoints)
	var out bytes.Buffer

	assert.Error(t, run("nope", 2, 1234, path, &out), "unknown goal")
	assert.Error(t, run("sym", 2, 1234, filepath.Join(t.TempDir(), "absent.csv"), &out),
		"missing file")
	assert.Error(t, run("sym", 2, 1234, writeDataset(t, "1,2\n3\n"), &out),
		"ragged dataset")
	assert.Error(t, run("symnmf", 0, 1234, path, &out), "rank below 1")
}

// TestRootCmd_Dispatch drives the cobra layer itself: flags parse, output
// lands on the command's writer, argument count is enforced.
func TestRootCmd_Dispatch(t *testing.T) {
	path := writeDataset(t, threePoints)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--goal", "ddg", path})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "1.0000,"),
		"result matrix must land on the command writer")

	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--goal", "sym"})
	assert.Error(t, cmd.Execute(), "FILE argument is required")
}
