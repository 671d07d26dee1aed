package navigator

import (
	"strconv"
	"strings"
)

// CommandKind tags the outcome of resolving one line of operator input.
type CommandKind int

const (
	// Invalid input: show Reason and re-prompt, depth unchanged.
	Invalid CommandKind = iota
	// Select descends into or interacts with item Index (0-based).
	Select
	// Up pops one menu level (no-op at the root).
	Up
	// Root unwinds to a freshly rebuilt root menu.
	Root
	// Quit terminates the whole run.
	Quit
	// Help shows the command guide.
	Help
	// Filter narrows an entry list with the expression in Arg (empty Arg
	// clears the filter).
	Filter
)

// Command is the resolved form of one input line.
type Command struct {
	Kind   CommandKind
	Index  int
	Arg    string
	Reason string
}

// Resolve maps operator input and the current list length to a command.
// It is a pure function: menu behavior is testable without console I/O.
// Selection is 1-based on the wire, 0-based in the result.
func Resolve(input string, itemCount int) Command {
	line := strings.TrimSpace(input)
	lower := strings.ToLower(line)

	switch lower {
	case "":
		return Command{Kind: Invalid, Reason: "enter a number"}
	case "q", "quit":
		return Command{Kind: Quit}
	case "b", "back":
		return Command{Kind: Up}
	case "m", "main":
		return Command{Kind: Root}
	case "?", "help":
		return Command{Kind: Help}
	case "f":
		return Command{Kind: Filter}
	}

	if rest, ok := strings.CutPrefix(line, "f "); ok {
		return Command{Kind: Filter, Arg: strings.TrimSpace(rest)}
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return Command{Kind: Invalid, Reason: "enter a number"}
	}
	if n < 1 || n > itemCount {
		return Command{Kind: Invalid, Reason: "number out of range"}
	}
	return Command{Kind: Select, Index: n - 1}
}
