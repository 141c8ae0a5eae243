// Package progress renders a single-line progress indicator for slow steps
// such as the template download and the dependency install.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/kculz/greycodejs-cli/internal/style"
	"golang.org/x/term"
)

// Spinner animates while a step runs and always finishes with either
// Succeed or Fail. On non-terminal writers it prints one line per state
// change instead of animating.
type Spinner struct {
	w      io.Writer
	tty    bool
	frames spinner.Spinner

	mu     sync.Mutex
	text   string
	active bool
	stop   chan struct{}
	done   chan struct{}
}

// New creates a Spinner that writes to w.
func New(w io.Writer) *Spinner {
	return &Spinner{
		w:      w,
		tty:    isTerminal(w),
		frames: spinner.MiniDot,
	}
}

// Start begins the indicator with the given text. Calling Start on an
// active spinner only replaces its text.
func (s *Spinner) Start(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	if s.active {
		return
	}
	s.active = true

	if !s.tty {
		fmt.Fprintf(s.w, "- %s\n", text)
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.animate(s.stop, s.done)
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Succeed stops the indicator and prints text as a completed step.
func (s *Spinner) Succeed(text string) {
	s.finish(style.Success.Render("✔") + " " + text)
}

// Fail stops the indicator and prints text as a failed step.
func (s *Spinner) Fail(text string) {
	s.finish(style.Error.Render("✖") + " " + text)
}

func (s *Spinner) finish(line string) {
	s.mu.Lock()
	wasActive := s.active
	s.active = false
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if wasActive && stop != nil {
		close(stop)
		<-done
		fmt.Fprint(s.w, "\r\033[K")
	}
	fmt.Fprintln(s.w, line)
}

func (s *Spinner) animate(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.frames.FPS)
	defer ticker.Stop()

	for i := 0; ; i++ {
		s.mu.Lock()
		text := s.text
		s.mu.Unlock()

		frame := s.frames.Frames[i%len(s.frames.Frames)]
		fmt.Fprintf(s.w, "\r\033[K%s %s", style.Command.Render(frame), text)

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
