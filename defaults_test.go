package argp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigFileDefaults(t *testing.T) {
	path := writeConfig(t, "defaults.yaml", `
count: 3
name: file
ratio: 0.5
verbose: true
initial: z
output: ignored.txt
`)
	var (
		count   int
		name    string
		ratio   float64
		verbose bool
		initial rune
		output  *os.File
	)
	r := NewRegistry()
	defer r.Release()
	require.NoError(t, r.Register("-c", "--count", Int, &count, "", false))
	require.NoError(t, r.Register("-n", "--name", String, &name, "", false))
	require.NoError(t, r.Register("", "--ratio", Float, &ratio, "", false))
	require.NoError(t, r.Register("-v", "--verbose", Bool, &verbose, "", false))
	require.NoError(t, r.Register("-i", "--initial", Char, &initial, "", false))
	require.NoError(t, r.Register("-o", "--output", WriteFile, &output, "", false))
	require.NoError(t, r.ConfigFile(path))

	require.NoError(t, r.Parse([]string{"--name", "cli"}))
	assert.Equal(t, 3, count)
	assert.Equal(t, "cli", name, "command line wins")
	assert.Equal(t, 0.5, ratio)
	assert.True(t, verbose)
	assert.Equal(t, 'z', initial)
	assert.Nil(t, output, "file options are never defaulted")
	assert.False(t, r.Lookup("--count").Bound(), "config values are not bound")
	assert.True(t, r.Lookup("--name").Bound())
}

func TestConfigFileDoesNotSatisfyRequired(t *testing.T) {
	path := writeConfig(t, "defaults.json", `{"name": "file"}`)
	var name string
	r := NewRegistry()
	require.NoError(t, r.Register("-n", "--name", String, &name, "", true))
	require.NoError(t, r.ConfigFile(path))
	assert.Equal(t, ArgumentMissing, CodeOf(r.Parse(nil)))
	assert.Equal(t, "file", name)
}

func TestConfigFilePrefix(t *testing.T) {
	path := writeConfig(t, "nested.yaml", `
app:
  count: 4
other:
  count: 9
`)
	count := pointer.To(1)
	r := NewRegistry()
	require.NoError(t, r.Register("-c", "--count", Int, count, "", false))
	require.NoError(t, r.ConfigFile(path, "app"))
	require.NoError(t, r.ConfigFile(path, "missing"))
	require.NoError(t, r.Parse(nil))
	assert.Equal(t, 4, *count)
}

func TestConfigFileFirstWins(t *testing.T) {
	first := writeConfig(t, "first.yaml", "count: 1\n")
	second := writeConfig(t, "second.yaml", "count: 2\nname: two\n")
	var count int
	var name string
	r := NewRegistry()
	require.NoError(t, r.Register("-c", "--count", Int, &count, "", false))
	require.NoError(t, r.Register("-n", "--name", String, &name, "", false))
	require.NoError(t, r.ConfigFile(first))
	require.NoError(t, r.ConfigFile(second))
	require.NoError(t, r.Parse(nil))
	assert.Equal(t, 1, count)
	assert.Equal(t, "two", name)
}

func TestConfigFileErrors(t *testing.T) {
	var count int8
	r := NewRegistry()
	require.NoError(t, r.Register("-c", "--count", Int, &count, "", false))

	assert.Equal(t, FileOpen, CodeOf(r.ConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))))
	assert.Equal(t, FileOpen, CodeOf(r.ConfigFile(writeConfig(t, "defaults.txt", "count: 1"))), "unknown format")

	require.NoError(t, r.ConfigFile(writeConfig(t, "bad.yaml", "count: lots\n")))
	assert.Equal(t, InvalidValue, CodeOf(r.Parse(nil)))

	r = NewRegistry()
	require.NoError(t, r.Register("-c", "--count", Int, &count, "", false))
	require.NoError(t, r.ConfigFile(writeConfig(t, "big.yaml", "count: 1000\n")))
	assert.Equal(t, InvalidValue, CodeOf(r.Parse(nil)), "overflows int8")
	assert.Equal(t, int8(0), count)
}
