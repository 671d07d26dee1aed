// Package console is the operator I/O capability: choice lists, line
// input, and info/error/result output. The navigation core talks to the
// Console interface only; the readline-backed Terminal is the production
// implementation and Script is the test double.
package console

import (
	"github.com/mattn/go-runewidth"
)

// Console is the synchronous operator I/O contract.
type Console interface {
	// List displays a titled, 1-based numbered choice list.
	List(title string, items []string)
	// ReadLine prompts for one line of input. io.EOF (also returned for
	// an interrupt) tells the caller the operator is gone.
	ReadLine(prompt string) (string, error)
	// Info shows neutral progress text.
	Info(text string)
	// Error shows an operator-visible failure.
	Error(text string)
	// Result shows the outcome of a read or invocation.
	Result(text string)
}

// Pad right-pads s with spaces to the given display width, counting wide
// runes correctly.
func Pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	for gap > 0 {
		s += " "
		gap--
	}
	return s
}
