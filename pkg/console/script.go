package console

import "io"

// Script is a scripted Console for tests: it replays queued operator
// inputs and records everything the core displays. When the inputs run
// out, ReadLine reports io.EOF, which the navigator treats as quit.
type Script struct {
	Inputs []string
	next   int

	Titles  []string
	Lists   [][]string
	Prompts []string
	Infos   []string
	Errors  []string
	Results []string
}

// NewScript queues the given operator inputs.
func NewScript(inputs ...string) *Script {
	return &Script{Inputs: inputs}
}

func (s *Script) List(title string, items []string) {
	s.Titles = append(s.Titles, title)
	s.Lists = append(s.Lists, append([]string(nil), items...))
}

func (s *Script) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.Inputs) {
		return "", io.EOF
	}
	line := s.Inputs[s.next]
	s.next++
	return line, nil
}

func (s *Script) Info(text string)   { s.Infos = append(s.Infos, text) }
func (s *Script) Error(text string)  { s.Errors = append(s.Errors, text) }
func (s *Script) Result(text string) { s.Results = append(s.Results, text) }
