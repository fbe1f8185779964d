package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE", "memory")
	t.Setenv("MAX_DISTANCE", "")

	rootCmd := newRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--env", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestSeed_PrintsDirectory(t *testing.T) {
	out, err := run(t, "seed")

	require.NoError(t, err)
	assert.Contains(t, out, "Tel-Aviv")
	assert.Contains(t, out, "Beethoven")
	assert.Contains(t, out, "Neta")
}

func TestAssign_ByName(t *testing.T) {
	out, err := run(t, "--seed", "assign",
		"--customer", "Beethoven", "--restaurant", "vegan", "--at", "2024-03-01T13:00:00Z")

	require.NoError(t, err)
	assert.Contains(t, out, "assigned to driver")
}

func TestAssign_CityMismatchIsReported(t *testing.T) {
	out, err := run(t, "--seed", "assign",
		"--customer", "Beethoven", "--restaurant", "meat", "--at", "2024-03-01T13:00:00Z")

	require.NoError(t, err)
	assert.Contains(t, out, "Order rejected")
	assert.Contains(t, out, "Tel-Aviv")
}

func TestAssign_InvalidTime(t *testing.T) {
	_, err := run(t, "--seed", "assign",
		"--customer", "Beethoven", "--restaurant", "vegan", "--at", "tomorrow")

	require.Error(t, err)
}

func TestReport_ListsEveryDriver(t *testing.T) {
	out, err := run(t, "--seed", "report")

	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL KM")
	assert.Contains(t, out, "Mary")
	assert.Contains(t, out, "Jennifer")
}

func TestReport_ByCityWithoutDeliveriesIsEmpty(t *testing.T) {
	out, err := run(t, "--seed", "report", "--city", "Haifa")

	require.NoError(t, err)
	assert.NotContains(t, out, "Jennifer")
}

func TestRun_FlagsDoNotCarryOver(t *testing.T) {
	_, err := run(t, "--seed", "report", "--city", "Haifa")
	require.NoError(t, err)

	out, err := run(t, "--seed", "report")

	require.NoError(t, err)
	assert.Contains(t, out, "Jennifer")

	_, err = run(t, "report", "--city", "Haifa")
	require.Error(t, err, "city names resolve only with --seed")
}
