package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run([]string{"--root", root}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.DirExists(t, filepath.Join(root, "dist"))
	assert.Equal(t,
		"Building server...\n✓ Server build complete (TypeScript files will be executed with tsx)\n",
		stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_FailureExitsOne(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist"), []byte("occupied"), 0o644))
	var stdout, stderr bytes.Buffer

	code := run([]string{"--root", root}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Server build failed: stat "+filepath.Join(root, "dist")+": not a directory")
	assert.NotContains(t, stdout.String(), "✓")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--nope"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Server build failed:")
}
