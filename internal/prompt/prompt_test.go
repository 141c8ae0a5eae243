package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var interview = []Question{
	{Name: "projectDescription", Message: "Project description:", Default: "A new GreyCode.js project"},
	{Name: "author", Message: "Author name:", Default: ""},
}

func TestLineAskUsesAnswers(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("demo\nJane\n"), &out)

	got, err := p.Ask(interview)
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got["projectDescription"] != "demo" || got["author"] != "Jane" {
		t.Errorf("unexpected answers: %v", got)
	}
	if !strings.Contains(out.String(), "? Project description: (A new GreyCode.js project) ") {
		t.Errorf("default not shown in prompt: %q", out.String())
	}
	if !strings.Contains(out.String(), "? Author name: ") {
		t.Errorf("author prompt missing: %q", out.String())
	}
}

func TestLineAskBlankUsesDefaults(t *testing.T) {
	p := NewLine(strings.NewReader("\n   \n"), &bytes.Buffer{})

	got, err := p.Ask(interview)
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got["projectDescription"] != "A new GreyCode.js project" {
		t.Errorf("description = %q, want default", got["projectDescription"])
	}
	if got["author"] != "" {
		t.Errorf("author = %q, want empty", got["author"])
	}
}

func TestLineAskFinalLineWithoutNewline(t *testing.T) {
	p := NewLine(strings.NewReader("demo\nJane"), &bytes.Buffer{})

	got, err := p.Ask(interview)
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got["author"] != "Jane" {
		t.Errorf("author = %q, want Jane", got["author"])
	}
}

func TestLineAskEOFAborts(t *testing.T) {
	p := NewLine(strings.NewReader("demo\n"), &bytes.Buffer{})

	_, err := p.Ask(interview)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestLineConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"blank defaults to no", "\n", false, false},
		{"blank defaults to yes", "\n", true, true},
		{"y", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"no", "no\n", true, false},
		{"re-ask on garbage", "maybe\ny\n", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLine(strings.NewReader(tt.input), &bytes.Buffer{})
			got, err := p.Confirm("Overwrite?", tt.def)
			if err != nil {
				t.Fatalf("Confirm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineConfirmHint(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("\n"), &out)
	if _, err := p.Confirm("Overwrite?", false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "? Overwrite? (y/N) ") {
		t.Errorf("unexpected prompt %q", out.String())
	}
}

func TestLineConfirmEOF(t *testing.T) {
	p := NewLine(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Confirm("Overwrite?", false); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Answers: map[string]string{"author": "Jane"}, Overwrite: true}

	got, err := s.Ask(interview)
	if err != nil {
		t.Fatal(err)
	}
	if got["projectDescription"] != "A new GreyCode.js project" {
		t.Errorf("missing answer should use default, got %q", got["projectDescription"])
	}
	if got["author"] != "Jane" {
		t.Errorf("author = %q", got["author"])
	}

	ok, _ := s.Confirm("Overwrite?", false)
	if !ok {
		t.Error("Scripted.Confirm should return Overwrite")
	}
	if len(s.Asked) != 3 {
		t.Errorf("Asked = %v, want 3 entries", s.Asked)
	}
}
