package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/njchilds90/nadlogar/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "absent.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestKinds(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "double-root"))
}

func TestGenerate_JSON(t *testing.T) {
	out, err := run(t, "generate", "double-root", "--seed", "4", "--count", "2")
	require.NoError(t, err)
	var got []struct {
		Kind   string            `json:"kind"`
		Seed   int64             `json:"seed"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.EqualValues(t, 4, got[0].Seed)
	assert.EqualValues(t, 5, got[1].Seed)
	assert.Contains(t, got[0].Fields, "double_root")
}

func TestGenerate_YAML(t *testing.T) {
	out, err := run(t, "generate", "rational-function", "--format", "yaml")
	require.NoError(t, err)
	var got []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "rational-function", got[0]["kind"])
}

func TestGenerate_Preview(t *testing.T) {
	out, err := run(t, "generate", "factored", "--seed", "2", "--preview")
	require.NoError(t, err)
	assert.Contains(t, out, "# factored (seed 2)")
	assert.NotContains(t, out, "@")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := run(t, "generate", "cubic")
	assert.ErrorContains(t, err, "unknown problem kind")

	_, err = run(t, "generate", "vertex", "--format", "toml")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, "generate")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nadlogar.yaml")
	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "max_attempts: 1000")
}
