package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	tsv := filepath.Join(dir, "words.tsv")
	require.NoError(t, os.WriteFile(tsv, []byte("pen\tペン\nhello\tハロー\n"), 0o644))

	cfg := filepath.Join(dir, "config.yaml")
	yaml := "lexicon:\n  driver: tsv\n  path: " + tsv + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfg, []byte(yaml), 0o644))
	return cfg
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &out
	cmd.Reader = strings.NewReader(stdin)

	err := cmd.Run(context.Background(), append([]string{"transkana"}, args...))
	return out.String(), err
}

func TestConvert_Args(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "", "convert", "--config", cfg, "a", "pen")
	require.NoError(t, err)
	assert.Equal(t, "ア ペン\n", out)
}

func TestConvert_Stdin(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "hello\n", "--config", cfg, "convert")
	require.NoError(t, err)
	assert.Equal(t, "ハロー\n", out)
}

func TestConvert_CompactFlag(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "", "convert", "--config", cfg, "--compact", "これは a pen です")
	require.NoError(t, err)
	assert.Equal(t, "これはア ペンです\n", out)
}

func TestConvert_MissingConfigFile(t *testing.T) {
	_, err := run(t, "", "convert", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "pen")
	require.Error(t, err)
}

func TestEnv_ListsVariables(t *testing.T) {
	out, err := run(t, "", "env")
	require.NoError(t, err)
	assert.Contains(t, out, "LEXICON_DRIVER")
	assert.Contains(t, out, "ENGINE_COMPACT")
}
