package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdReportsFailureOnce(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.wav")

	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{missing})

	err := cmd.Execute()
	require.Error(t, err)

	// cobra prints the returned error; nothing else should repeat it.
	assert.Equal(t, 1, strings.Count(stderr.String(), "missing.wav"))
}
