package search

import (
	"fmt"
	"io"
	"strings"
)

const timeLayout = "2006-01-02 15:04:05"

// Printer renders matches as a human-readable report.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints the state machine banner that precedes its matches.
func (p *Printer) Header(stateMachineARN string) {
	fmt.Fprintf(p.w, "\nState Machine: %s\n", stateMachineARN)
	fmt.Fprintln(p.w, strings.Repeat("-", 80))
}

// Match prints one execution with its input pretty-printed.
func (p *Printer) Match(m Match) error {
	formatted, err := m.Input.Format()
	if err != nil {
		return err
	}

	fmt.Fprintf(p.w, "Name: %s\n", m.Detail.Name)
	fmt.Fprintf(p.w, "Status: %s\n", m.Detail.Status)
	fmt.Fprintf(p.w, "Start Date: %s\n", m.Detail.StartDate.UTC().Format(timeLayout))
	if m.Detail.StopDate != nil {
		fmt.Fprintf(p.w, "Stop Date: %s\n", m.Detail.StopDate.UTC().Format(timeLayout))
	}
	fmt.Fprintln(p.w, "Input:")
	fmt.Fprintln(p.w, formatted)
	fmt.Fprintln(p.w, strings.Repeat("-", 40))
	return nil
}
