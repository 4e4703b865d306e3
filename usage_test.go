package argp

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	var (
		name   string
		count  = 1
		value  = 2.5
		quiet  bool
		output *os.File
		char   = 'x'
	)
	r := NewRegistry(
		WithName("example_program"),
		WithDescription("A simple program to demonstrate the use of the argument parser."))
	defer r.Release()
	require.NoError(t, r.Register("-n", "--name", String, &name, "Your name", true))
	require.NoError(t, r.Register("-c", "--count", Int, &count, "Number of greetings", false))
	require.NoError(t, r.Register("-v", "--value", Float, &value, "A floating-point value", false))
	require.NoError(t, r.Register("-q", "--quiet", Bool, &quiet, "Run in quiet mode", false))
	require.NoError(t, r.Register("-o", "--output", WriteFile, &output, "", false))
	require.NoError(t, r.Register("-r", "--character", Char, &char, "random character", false))

	lines := strings.Split(r.Usage(), "\n")
	want := []string{
		"",
		"example_program",
		"A simple program to demonstrate the use of the argument parser.",
		"",
		"Usage: example_program [OPTIONS]",
		"",
		"Options:",
		"  --name         -n  <string>       Your name (Type: string) [Required] [Default: None]",
		"  --count        -c  <integer>      Number of greetings (Type: int) [Default: 1]",
		"  --value        -v  <float>        A floating-point value (Type: float) [Default: 2.50]",
		"  --quiet        -q  <bool>         Run in quiet mode (Type: bool) [Default: false]",
		"  --output       -o  <write_file>   No description (Type: write file)",
		"  --character    -r  <char>         random character (Type: char) [Default: x]",
		"",
		"",
	}
	assert.Equal(t, want, lines)
}

func TestUsageDefaults(t *testing.T) {
	var s string
	var c byte
	r := NewRegistry()
	require.NoError(t, r.Register("", "--only-long", String, &s, "", false))
	require.NoError(t, r.Register("-c", "", Char, &c, "", false))
	usage := r.Usage()
	assert.True(t, strings.HasPrefix(usage, "\nProgram Name\nNo description provided.\n\nUsage: program [OPTIONS]\n"), usage)
	assert.Contains(t, usage, "  --only-long        <string>       No description (Type: string) [Default: None]\n")
	assert.Contains(t, usage, "                 -c  <char>         No description (Type: char) [Default: None]\n")

	c = 'z'
	s = "set"
	usage = r.Usage()
	assert.Contains(t, usage, "[Default: set]", "defaults are read at render time")
	assert.Contains(t, usage, "[Default: z]")
}
