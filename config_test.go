package ttable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
	err := os.WriteFile(configPath, []byte(content), 0644)
	assert.NoError(t, err)

	return configPath
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)

	assert.Equal(t, "text", config.Output.Format)
	assert.Equal(t, ColorAuto, config.Output.Color)
	assert.True(t, config.Output.TraceEnabled())
	assert.False(t, config.Output.Summary)
	assert.Equal(t, 0, config.Evaluation.Workers)
	assert.False(t, config.Evaluation.Verify)
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
output:
  format: json
  color: never
  trace: false
  summary: true
evaluation:
  workers: 4
  verify: true
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)

	assert.Equal(t, "json", config.Output.Format)
	assert.Equal(t, ColorNever, config.Output.Color)
	assert.False(t, config.Output.TraceEnabled())
	assert.True(t, config.Output.Summary)
	assert.Equal(t, 4, config.Evaluation.Workers)
	assert.True(t, config.Evaluation.Verify)
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	configPath := writeConfig(t, `
output:
  summary: true
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)

	assert.Equal(t, "text", config.Output.Format)
	assert.Equal(t, ColorAuto, config.Output.Color)
	assert.True(t, config.Output.TraceEnabled())
}

func TestLoadConfig_StrictMode_UnknownKeys(t *testing.T) {
	configPath := writeConfig(t, `
output:
  format: text
  unknown_key: "should cause error"
`)

	_, err := LoadConfig(configPath)
	assert.Error(t, err, "expected error for unknown keys in strict mode")
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TTABLE_OUT_DIR", "/tmp/tables")

	configPath := writeConfig(t, `
output:
  file: ${TTABLE_OUT_DIR}/table.txt
`)

	config, err := LoadConfig(configPath)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/tables/table.txt", config.Output.File)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TTABLE_DOTENV_NAME=from-dotenv\n"), 0644)
	assert.NoError(t, err)

	t.Cleanup(func() { os.Unsetenv("TTABLE_DOTENV_NAME") })

	err = os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("output:\n  file: $TTABLE_DOTENV_NAME.csv\n"), 0644)
	assert.NoError(t, err)

	config, err := LoadConfig(DefaultConfigFile)
	assert.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", config.Output.File)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TTABLE_A", "alpha")

	tests := []struct {
		input    string
		expected string
	}{
		{"${TTABLE_A}/x", "alpha/x"},
		{"$TTABLE_A-x", "alpha-x"},
		{"plain", "plain"},
		{"${TTABLE_UNSET_VARIABLE}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandEnvVars(tt.input))
		})
	}
}
