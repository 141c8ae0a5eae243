// Package prompt asks the operator questions. The Line prompter reads answers
// line by line from any reader; Scripted answers from fixed values so the
// scaffold pipeline can run without a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when input ends before a question was answered.
var ErrAborted = errors.New("interactive session aborted")

// Question is a single free-text question with a default answer.
type Question struct {
	Name    string
	Message string
	Default string
}

// Prompter collects answers from the operator.
type Prompter interface {
	// Ask asks each question in order and returns answers keyed by name.
	// Blank input yields the question's default.
	Ask(questions []Question) (map[string]string, error)
	// Confirm asks a yes/no question. Blank input yields def.
	Confirm(message string, def bool) (bool, error)
}

// Line prompts on w and reads newline-terminated answers from r.
type Line struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLine creates a Line prompter.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{reader: bufio.NewReader(r), w: w}
}

// Ask implements Prompter.
func (l *Line) Ask(questions []Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		if q.Default != "" {
			fmt.Fprintf(l.w, "? %s (%s) ", q.Message, q.Default)
		} else {
			fmt.Fprintf(l.w, "? %s ", q.Message)
		}

		line, err := l.readLine()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", q.Name, err)
		}
		if line == "" {
			line = q.Default
		}
		answers[q.Name] = line
	}
	return answers, nil
}

// Confirm implements Prompter. Unrecognized answers re-ask the question.
func (l *Line) Confirm(message string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(l.w, "? %s (%s) ", message, hint)

		line, err := l.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.w, "Please answer yes or no.")
	}
}

// readLine returns the next trimmed line. A final line without a trailing
// newline is still accepted; EOF with nothing read is ErrAborted.
func (l *Line) readLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Scripted answers questions from a fixed map. Missing answers and blank
// answers fall back to the question default.
type Scripted struct {
	Answers   map[string]string
	Overwrite bool

	// Asked records every message shown, in order.
	Asked []string
}

// Ask implements Prompter.
func (s *Scripted) Ask(questions []Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		s.Asked = append(s.Asked, q.Message)
		v := s.Answers[q.Name]
		if v == "" {
			v = q.Default
		}
		answers[q.Name] = v
	}
	return answers, nil
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(message string, _ bool) (bool, error) {
	s.Asked = append(s.Asked, message)
	return s.Overwrite, nil
}
