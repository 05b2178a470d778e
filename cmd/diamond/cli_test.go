package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	log.SetOutput(io.Discard)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSanityCommand(t *testing.T) {
	out, err := runCommand(t, "sanity",
		"-g", "16,16,16", "-t", "8t,8t,8t", "-h", "4", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "sanity check passed.")
}

func TestVerifyCommand(t *testing.T) {
	out, err := runCommand(t, "verify",
		"-g", "8,8,8", "-t", "6t,6t,6p", "-h", "4", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "verification passed.")
}

func TestOddHeightIsAnArgumentError(t *testing.T) {
	_, err := runCommand(t, "sanity",
		"-g", "16,16,16", "-t", "8t,8t,8t", "-h", "9", "-n", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tile-height")
}

func TestParallelogramOnIIsRejected(t *testing.T) {
	_, err := runCommand(t, "sanity",
		"-g", "16,16,16", "-t", "8p,8t,8t", "-h", "4", "-n", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trapezoid")
}

func TestDiagnoseShapes(t *testing.T) {
	out, err := runCommand(t, "diagnose", "shapes",
		"-g", "20,20,20", "-t", "8t,8t,8p", "-h", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "unique subtile shapes found.")
	assert.Contains(t, out, "subtiles")
	assert.Contains(t, out, "stored naively")
}

func TestDiagnoseSpeedup(t *testing.T) {
	out, err := runCommand(t, "diagnose", "speedup",
		"-g", "20,20,20", "-t", "8t,8t,8p", "-h", "4", "-n", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "tiled total")
	assert.Contains(t, out, "naive total")
	assert.Contains(t, out, "speedup")
}

func TestDiagnoseSpeedupSlidingWindowNeedsParallelogramK(t *testing.T) {
	_, err := runCommand(t, "diagnose", "speedup",
		"-g", "20,20,20", "-t", "8t,8t,8t", "-h", "4", "-w")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sliding-window")

	// reset for later tests sharing the package-level flag
	slidingWindow = false
}

func TestDiagnoseDump(t *testing.T) {
	out, err := runCommand(t, "diagnose", "dump",
		"-g", "20,20,20", "-t", "8t,8t,8p", "-h", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "axis i")
	assert.Contains(t, out, "axis k")
}
