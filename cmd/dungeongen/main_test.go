package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate", "--size", "xs", "--seed", "3", "--validate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 24)
	assert.Len(t, lines[0], 24)
	assert.Equal(t, 1, strings.Count(out, "@"))
	assert.LessOrEqual(t, strings.Count(out, ">"), 1)
	assert.Equal(t, "valid", lines[len(lines)-1])
}

func TestGenerateBadSize(t *testing.T) {
	_, err := run(t, "generate", "--size", "huge")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "--size", "s", "--seeds", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "S: 5 maps checked")
}

func TestGenerateTuning(t *testing.T) {
	out, err := run(t, "generate", "--size", "xs", "--seed", "3", "--loop-chance", "0", "--validate")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	_, err = run(t, "generate", "--size", "xs", "--loop-chance", "1.5")
	assert.ErrorContains(t, err, "invalid tuning")

	// flag values persist on the shared command
	_, err = run(t, "generate", "--size", "xs", "--loop-chance", "0.3")
	require.NoError(t, err)
}
