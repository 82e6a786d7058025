package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	conf := Default()
	assert.Equal(t, "miischeme> ", conf.Prompt)
	assert.Equal(t, "rn", conf.Language)
	assert.Equal(t, 10000, conf.MaxDepth)
	assert.False(t, conf.Debug)
	assert.Empty(t, conf.Path)
}

func TestLoadMissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)

	conf, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "miischeme.yaml")

	err := os.WriteFile(path, []byte(strings.Join([]string{
		"prompt: \"> \"",
		"language: en",
		"max_depth: 50",
		"debug: true",
	}, "\n")), 0o644)
	require.NoError(t, err)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "> ", conf.Prompt)
	assert.Equal(t, "en", conf.Language)
	assert.Equal(t, 50, conf.MaxDepth)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)

	// not in the file
	assert.Equal(t, DefaultContinuation, conf.Continuation)
	assert.Equal(t, DefaultHistory, conf.History)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []string{
		"max_depth: -1",
		"max_depth: many",
		"unknown_field: 1",
		"prompt: [",
	}

	for i := range testCases {
		err := Default().Decode(strings.NewReader(testCases[i]))
		assert.Error(t, err, "decode %q", testCases[i])
	}
}

func TestDecodeEmpty(t *testing.T) {
	conf := Default()
	require.NoError(t, conf.Decode(strings.NewReader("")))
	assert.Equal(t, Default(), conf)

	conf = Default()
	require.NoError(t, conf.Decode(strings.NewReader("language: \"\"\nprompt: \"\"")))
	assert.Equal(t, DefaultLanguage, conf.Language)
	assert.Equal(t, DefaultPrompt, conf.Prompt)
}

func TestWrite(t *testing.T) {
	conf := Default()
	conf.Language = "en"

	var buf bytes.Buffer
	require.NoError(t, conf.Write(&buf))

	assert.Contains(t, buf.String(), "language: en")
	assert.Contains(t, buf.String(), "max_depth: 10000")
	assert.NotContains(t, buf.String(), "path")

	decoded := Default()
	require.NoError(t, decoded.Decode(&buf))
	assert.Equal(t, conf, decoded)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	testCases := []struct {
		In  string
		Out string
	}{
		{"~", home},
		{"~/.miischeme_history", filepath.Join(home, ".miischeme_history")},
		{"/tmp/history", "/tmp/history"},
		{"relative/history", "relative/history"},
		{"~user/history", "~user/history"},
	}

	for i := range testCases {
		out, err := ExpandHome(testCases[i].In)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, out)
	}

	conf := Default()
	conf.History = ""
	path, err := conf.HistoryPath()
	require.NoError(t, err)
	assert.Empty(t, path)
}
