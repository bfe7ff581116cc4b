// Package console reads validated values from a line based input, re-prompting
// until the user enters something acceptable.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadBoundedInt keeps prompting until an integer within [min, max] is entered.
// The only errors returned are from the underlying reader (io.EOF included).
func (p *Prompter) ReadBoundedInt(prompt string, min, max int, errorMsg string) (int, error) {
	for {
		n, ok, err := p.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if ok && n >= min && n <= max {
			return n, nil
		}
		p.println(errorMsg)
	}
}

// ReadNonBlankString keeps prompting until a line with at least one
// non-whitespace character is entered, and returns that line as typed.
func (p *Prompter) ReadNonBlankString(prompt, errorMsg string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		p.println(errorMsg)
	}
}

func (p *Prompter) readInt(prompt string) (int, bool, error) {
	line, err := p.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// readLine writes the prompt and reads one line without its line ending.
// A final line not terminated by a newline is still returned; io.EOF comes
// only when there is nothing left to read.
func (p *Prompter) readLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (p *Prompter) println(msg string) {
	// console write errors surface on the next prompt
	_, _ = fmt.Fprintln(p.out, msg)
}
