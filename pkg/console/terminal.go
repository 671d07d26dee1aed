package console

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
)

// Terminal is the readline-backed Console for a real operator.
type Terminal struct {
	rl  *readline.Instance
	out io.Writer
}

// NewTerminal opens the readline instance. Close releases it.
func NewTerminal() (*Terminal, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &Terminal{rl: rl, out: os.Stdout}, nil
}

// Close releases the readline instance.
func (t *Terminal) Close() error { return t.rl.Close() }

func (t *Terminal) List(title string, items []string) {
	fmt.Fprintf(t.out, "\n%s\n", titleStyle.Render(title))
	width := len(fmt.Sprintf("%d", len(items)))
	for i, item := range items {
		idx := fmt.Sprintf("%*d", width, i+1)
		fmt.Fprintf(t.out, "  %s: %s\n", indexStyle.Render(idx), item)
	}
	fmt.Fprintf(t.out, "%s\n", hintStyle.Render("  b: up  m: root  q: quit  ?: help"))
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	if err != nil {
		// Interrupt and EOF both mean the operator is done.
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return line, nil
}

func (t *Terminal) Info(text string) {
	fmt.Fprintf(t.out, "%s\n", infoStyle.Render(text))
}

func (t *Terminal) Error(text string) {
	fmt.Fprintf(t.out, "%s\n", errorStyle.Render(text))
}

func (t *Terminal) Result(text string) {
	fmt.Fprintf(t.out, "%s\n", resultStyle.Render(text))
}
