package argp

import (
	"errors"
	"fmt"
)

func Example_usage() {
	count := 1
	r := NewRegistry(
		WithName("greet"),
		WithDescription("Say hello."))
	defer r.Release()
	_ = r.Register("-c", "--count", Int, &count, "Number of greetings", false)
	fmt.Print(r.Usage())
	// Output:
	// greet
	// Say hello.
	//
	// Usage: greet [OPTIONS]
	//
	// Options:
	//   --count    -c  <integer>      Number of greetings (Type: int) [Default: 1]
}

func ExampleRegistry_Parse() {
	var (
		name  string
		count = 1
		quiet bool
	)
	r := NewRegistry(WithName("greet"))
	defer r.Release()
	_ = r.Register("-n", "--name", String, &name, "Your name", true)
	_ = r.Register("-c", "--count", Int, &count, "Number of greetings", false)
	_ = r.Register("-q", "--quiet", Bool, &quiet, "Run in quiet mode", false)

	err := r.Parse([]string{"-c", "2", "--name", "world", "extra", "--count", "7"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < count && !quiet; i++ {
		fmt.Printf("Hello, %s!\n", name)
	}
	fmt.Println("left over:", r.Remaining())
	// Output:
	// Hello, world!
	// Hello, world!
	// left over: [extra 7]
}

func ExampleCodeOf() {
	var name string
	r := NewRegistry()
	defer r.Release()
	_ = r.Register("-n", "--name", String, &name, "Your name", true)
	err := r.Parse([]string{"--verbose"})
	fmt.Println(CodeOf(err), errors.Is(err, ArgumentMissing), IsUsageError(err))
	// Output: ArgumentMissing true true
}
