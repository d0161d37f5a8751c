package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// writeSource writes a program to a temporary directory.
func writeSource(t *testing.T, name string, lines ...string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return
}

// doRun runs the command, returning its exit status and streams.
func doRun(input string, args ...string) (status int, stdout string, stderr string) {
	var outb, errb bytes.Buffer
	status = run("pasm", args, strings.NewReader(input), &outb, &errb)
	return status, outb.String(), errb.String()
}

func TestRun(t *testing.T) {
	hello := []string{
		"data msg \"hi\"",
		"ld r0, msg",
		"call puts",
	}

	table := []struct {
		name    string
		program []string
		args    []string
		input   string
		status  int
		stdout  string
		stderr  string
	}{
		{"hello", hello, nil, "", EXIT_OK, "hi", ""},
		{"echo", []string{
			"set r1, -1",
			"loop: call getc",
			"jeq done, r0, r1",
			"call putc",
			"jmp loop",
			"done: set r0, 0",
		}, nil, "abc", EXIT_OK, "abc", ""},
		{"predefine", []string{"set r0, $(LETTER)", "call putc"}, []string{"-D", "LETTER=0x41"}, "", EXIT_OK, "A", ""},
		{"listing", []string{"loop: add r0, 1", "jmp loop"}, []string{"-l"}, "", EXIT_OK, "0000 [   1] loop: add r0, 1\n", ""},
		{"translate", []string{"set r0, 1", "add r0,", "$"}, nil, "", EXIT_TRANSLATE, "", "line 3"},
		{"runtime", []string{"set r0, 1", "ret"}, nil, "", EXIT_RUNTIME, "", "line 2"},
		{"limit", []string{"spin: jmp spin"}, []string{"-t", "10"}, "", EXIT_RUNTIME, "", "line 1"},
		{"missing-input", hello, []string{"-i", "/nonexistent/input.txt"}, "", EXIT_FAILURE, "", "input.txt"},
		{"bad-define", hello, []string{"-D", "LETTER"}, "", EXIT_FAILURE, "", "NAME=VALUE"},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			source := writeSource(t, "prog.pasm", entry.program...)
			args := append(append([]string{}, entry.args...), source)

			status, stdout, stderr := doRun(entry.input, args...)
			assert.Equal(entry.status, status, stderr)
			if entry.status == EXIT_OK {
				assert.True(strings.HasPrefix(stdout, entry.stdout), stdout)
			}
			assert.Contains(stderr, entry.stderr)
		})
	}
}

func TestRunOutputFile(t *testing.T) {
	assert := assert.New(t)

	source := writeSource(t, "out.pasm", "set r0, 'Z'", "call putc")
	output := filepath.Join(t.TempDir(), "out.txt")

	status, stdout, _ := doRun("", "-o", output, source)
	assert.Equal(EXIT_OK, status)
	assert.Equal("", stdout)

	data, err := os.ReadFile(output)
	assert.NoError(err)
	assert.Equal("Z", string(data))
}

func TestRunArguments(t *testing.T) {
	assert := assert.New(t)

	status, _, stderr := doRun("")
	assert.Equal(EXIT_FAILURE, status)
	assert.Contains(stderr, "expected one source file")

	source := writeSource(t, "prog.txt", "ret")
	status, _, stderr = doRun("", source)
	assert.Equal(EXIT_FAILURE, status)
	assert.Contains(stderr, ".pasm")

	status, _, _ = doRun("", filepath.Join(t.TempDir(), "missing.pasm"))
	assert.Equal(EXIT_FAILURE, status)

	status, _, _ = doRun("", "-h")
	assert.Equal(EXIT_OK, status)

	status, _, _ = doRun("", "-bogus", "x.pasm")
	assert.Equal(EXIT_FAILURE, status)
}
