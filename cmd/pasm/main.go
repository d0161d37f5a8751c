// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/pasm/cpu"
	"github.com/ezrec/pasm/emulator"
	pasmio "github.com/ezrec/pasm/io"
	"github.com/ezrec/pasm/translate"
)

// Exit status of the command.
const (
	EXIT_OK        = 0
	EXIT_FAILURE   = 1 // Bad arguments, or files that cannot be opened.
	EXIT_TRANSLATE = 1 // Lexical or syntax errors.
	EXIT_RUNTIME   = 2 // Runtime error while interpreting.
)

func main() {
	atexit.Exit(run(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line, and returns the exit status.
func run(name string, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (status int) {
	var lang string
	var input string
	var output string
	var list bool
	var verbose bool
	var limit int

	logger := log.New(stderr, "", 0)
	asm := &cpu.Assembler{}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&lang, "lang", "", "Message language (BCP 47 tag)")
	flags.StringVar(&input, "i", "-", "Console input")
	flags.StringVar(&output, "o", "-", "Console output")
	flags.BoolVar(&list, "l", false, "List the translated program, do not execute")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.IntVar(&limit, "t", 0, "Maximum instructions to execute, 0 for no limit")
	flags.Func("D", "Predefine NAME=VALUE for $(...) expressions", func(define string) (err error) {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			return errors.New("expected NAME=VALUE")
		}
		num, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return
		}
		asm.Predefine(name, num)
		return
	})

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return EXIT_OK
	}
	if err != nil {
		return EXIT_FAILURE
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if flags.NArg() != 1 {
		logger.Printf("%v: expected one source file, got %v", name, flags.Args())
		return EXIT_FAILURE
	}

	source := flags.Arg(0)
	inf, err := pasmio.OpenSource(os.DirFS(filepath.Dir(source)), filepath.Base(source))
	if err != nil {
		logger.Printf("%v: %v", source, err)
		return EXIT_FAILURE
	}
	defer inf.Close()

	asm.Verbose = verbose
	prog, err := asm.Parse(inf)
	if err != nil {
		var et *cpu.ErrTranslate
		if !errors.As(err, &et) {
			logger.Printf("%v: %v", source, err)
			return EXIT_FAILURE
		}
		for _, e := range et.Unwrap() {
			fmt.Fprintf(stderr, "%v: %v\n", source, e)
		}
		return EXIT_TRANSLATE
	}

	if list {
		fmt.Fprint(stdout, prog)
		for _, label := range slices.Sorted(maps.Keys(prog.Labels)) {
			fmt.Fprintf(stdout, "%-16s %04d\n", label+":", prog.Labels[label])
		}
		return EXIT_OK
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.TickLimit = limit

	if input == "-" {
		emu.Tape.Input = stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			logger.Printf("%v: %v", input, err)
			return EXIT_FAILURE
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			logger.Printf("%v: %v", output, err)
			return EXIT_FAILURE
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	emu.Reset()
	err = emu.Run()
	if err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", source, err)
		if verbose {
			fmt.Fprint(stderr, emu.Cpu.String())
		}
		return EXIT_RUNTIME
	}

	if verbose {
		logger.Printf("%v: %d instructions executed", source, emu.Ticks())
	}

	return EXIT_OK
}
