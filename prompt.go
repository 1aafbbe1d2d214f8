package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
)

const promptExample = `-o "desktop" -i "/path/to/hamburger-icon.svg"`

// prompter asks for a fresh argument line when flags are missing or invalid.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// next returns the arguments typed by the user. ok is false at end of input.
func (p *prompter) next() (args []string, ok bool, err error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Please provide an argument for the output (-o) and the input svg file (-i). Enter desktop to use the Desktop folder in your home directory as the output location. For example:")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, promptExample)
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, "Type here:-> ")

	if !p.in.Scan() {
		return nil, false, p.in.Err()
	}
	args, err = splitArgs(p.in.Text())
	if err != nil {
		return nil, true, err
	}
	return args, true, nil
}

// splitArgs splits a line on whitespace; quoted sections stay together.
func splitArgs(line string) ([]string, error) {
	return shlex.Split(strings.TrimSpace(line))
}
