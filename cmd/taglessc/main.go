package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lhaig/tagless/internal/cbe"
	"github.com/lhaig/tagless/internal/compiler"
	"github.com/lhaig/tagless/internal/lambda"
)

const usage = `taglessc - interpret example programs with interchangeable backends

Usage:
  taglessc list                                     List built-in programs
  taglessc emit [options] <program>                 Print the program for a target
  taglessc build [options] [-o out] <program>       Compile the program to a native binary via C
  taglessc run [options] <program>                  Build, execute and print the result
  taglessc lambda [--target eval|length|display]    Interpret the identity-applied-to-identity term

Options:
  --target <name>      eval, display, c or tagged (default: eval)
  --start <n>          starting identifier index for C (default: 2)
  --naming <scheme>    exponent or sequential (default: exponent)
  --write <base>       write emitted output to <base>.c or <base>.txt

Examples:
  taglessc emit --target c nested-if
  taglessc emit --target c --naming sequential arith
  taglessc run nested-if
`

type options struct {
	target  string
	cOpts   cbe.Options
	output  string
	write   string
	program string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	command := os.Args[1]
	c := compiler.New(compiler.Builtin())

	switch command {
	case "list":
		handleList()
	case "emit":
		handleEmit(c, parseOptions(os.Args[2:]))
	case "build":
		handleBuild(c, parseOptions(os.Args[2:]))
	case "run":
		handleRun(c, parseOptions(os.Args[2:]))
	case "lambda":
		handleLambda(parseOptions(os.Args[2:]))
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func parseOptions(args []string) options {
	opts := options{target: "eval", cOpts: cbe.DefaultOptions()}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--target", "--start", "--naming", "--write", "-o":
			if i+1 >= len(args) {
				fail("Error: %s requires a value", arg)
			}
			i++
			setOption(&opts, arg, args[i])
		default:
			if strings.HasPrefix(arg, "-") {
				fail("Unknown option: %s", arg)
			}
			opts.program = arg
		}
	}
	return opts
}

func setOption(opts *options, name, value string) {
	switch name {
	case "--target":
		opts.target = value
	case "--start":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil || n == 0 {
			fail("Error: --start must be a positive integer, got %q", value)
		}
		opts.cOpts.Start = n
	case "--naming":
		naming, err := cbe.ParseNaming(value)
		if err != nil {
			fail("Error: %s", err)
		}
		opts.cOpts.Naming = naming
	case "--write":
		opts.write = value
	case "-o":
		opts.output = value
	}
}

func handleList() {
	registry := compiler.Builtin()
	for _, name := range registry.Names() {
		p, _ := registry.Lookup(name)
		fmt.Printf("%-10s %s\n", name, p.Description)
	}
}

func handleEmit(c *compiler.Compiler, opts options) {
	requireProgram(opts)

	if opts.write != "" {
		path, err := c.EmitToTarget(opts.program, opts.target, opts.write, opts.cOpts)
		if err != nil {
			fail("Error: %s", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	res := c.Compile(opts.program, opts.target, opts.cOpts)
	if res.Diagnostics.Count() > 0 {
		fmt.Fprintln(os.Stderr, res.Diagnostics.Format(opts.program))
	}
	if res.Diagnostics.HasErrors() {
		os.Exit(1)
	}
	fmt.Println(res.Output)
}

func handleBuild(c *compiler.Compiler, opts options) {
	requireProgram(opts)

	outPath := opts.output
	if outPath == "" {
		outPath = opts.program
	}
	fmt.Printf("Compiling %s...\n", opts.program)
	if err := c.BuildC(opts.program, outPath, opts.cOpts); err != nil {
		fail("Error: %s", err)
	}
	fmt.Printf("Built %s\n", outPath)
}

func handleRun(c *compiler.Compiler, opts options) {
	requireProgram(opts)

	out, err := c.Run(opts.program, opts.cOpts)
	if err != nil {
		fail("Error: %s", err)
	}
	fmt.Println(out)
}

func handleLambda(opts options) {
	switch opts.target {
	case "eval":
		fmt.Printf("%v\n", lambda.Call(lambda.IdApplyId[any](lambda.Eval{}), lambda.Unit{}))
	case "length":
		fmt.Println(lambda.Size(lambda.IdApplyId[uint64](lambda.Length{})))
	case "display":
		fmt.Println(lambda.Print(lambda.IdApplyId[lambda.Doc](lambda.Printer{})))
	default:
		fail("Error: unknown lambda target: %s", opts.target)
	}
}

func requireProgram(opts options) {
	if opts.program == "" {
		fail("Error: no program specified")
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
