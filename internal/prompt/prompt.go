// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"
)

// Prompter reads interactive input. An interrupt (or EOF) during any prompt
// is a clean, deliberate abort: Exit is called with status 0, matching the
// behavior a user expects from Ctrl-C at a question.
type Prompter struct {
	In   io.Reader
	Out  io.Writer
	Exit func(code int)

	// noEcho reads a secret from the terminal without echoing it. Left nil
	// when stdin is not a terminal, in which case secrets fall back to a
	// plain line read.
	noEcho func() (string, error)

	reader *bufio.Reader
}

// New returns a Prompter bound to the real terminal.
func New() *Prompter {
	p := &Prompter{
		In:   os.Stdin,
		Out:  os.Stdout,
		Exit: os.Exit,
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		p.noEcho = func() (string, error) {
			b, err := term.ReadPassword(int(os.Stdin.Fd()))
			return string(b), err
		}
	}
	return p
}

// Required prompts until the user enters a non-empty value.
func (p *Prompter) Required(label string) string {
	for {
		value := p.line(label, p.readLine)
		if value != "" {
			return value
		}
		fmt.Fprintln(p.Out, "It cannot be empty...")
	}
}

// Secret prompts for a value without echoing it when a terminal is attached.
// Like Required, it insists on a non-empty value.
func (p *Prompter) Secret(label string) string {
	read := p.readLine
	if p.noEcho != nil {
		read = func() (string, error) {
			value, err := p.noEcho()
			fmt.Fprintln(p.Out)
			return value, err
		}
	}
	for {
		value := p.line(label, read)
		if value != "" {
			return value
		}
		fmt.Fprintln(p.Out, "It cannot be empty...")
	}
}

// Confirm prompts and reports whether the user answered "y".
func (p *Prompter) Confirm(label string) bool {
	return strings.EqualFold(p.line(label, p.readLine), "y")
}

// line prints the label and runs one read, racing it against an interrupt.
func (p *Prompter) line(label string, read func() (string, error)) string {
	fmt.Fprint(p.Out, label)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	type answer struct {
		value string
		err   error
	}
	ch := make(chan answer, 1)
	go func() {
		value, err := read()
		ch <- answer{value, err}
	}()

	select {
	case <-sig:
		fmt.Fprintln(p.Out)
		p.Exit(0)
		return ""
	case a := <-ch:
		if a.err != nil && a.value == "" {
			// EOF with nothing read counts as an abort.
			p.Exit(0)
			return ""
		}
		return strings.TrimSpace(a.value)
	}
}

func (p *Prompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	return p.reader.ReadString('\n')
}
