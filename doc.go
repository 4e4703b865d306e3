/*
Package argp parses a flat set of command line options into variables
owned by the caller.

Start with NewRegistry(). Register each option with its keys, its type,
and a pointer to where the value should go. Then call Parse with the
arguments (without the program name). Release the Registry when done.

	var (
		name  string
		count = 1
		out   *os.File
	)
	r := argp.NewRegistry(argp.WithName("greet"))
	defer r.Release()
	_ = r.Register("-n", "--name", argp.String, &name, "Your name", true)
	_ = r.Register("-c", "--count", argp.Int, &count, "Number of greetings", false)
	_ = r.Register("-o", "--output", argp.WriteFile, &out, "Output file", false)
	err := r.ParseOSArgs()

Long keys look like "--output" or "--dry-run", short keys like "-o". An
option needs at least one of them. "--help" and "-h" are reserved: when
either shows up anywhere on the command line, Parse prints the help text
and exits with status 0.

Parsing is a single pass. Each token is looked up as a key. Tokens that
are not keys are skipped and can be retrieved with Remaining(). Bool
options take no value; every other option takes the token after it. Only
the first occurrence of an option counts, whichever key was used, so

	-n 42 --number 100

leaves the option at 42.

File options (ReadFile, WriteFile, ReadWriteFile and their Binary
variants) are opened during Parse and the *os.File is handed to the
caller, who must close it.

Errors carry a Code from a closed set and can be tested with errors.Is:

	if errors.Is(err, argp.ArgumentMissing) {
		fmt.Print(r.Usage())
	}

Defaults can also come from YAML or JSON files, see ConfigFile.

Build with the debugArgp tag to log what the parser does.
*/
package argp
