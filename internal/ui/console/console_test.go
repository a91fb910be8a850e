package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestInReadsLinesAndEchoesPrompts(t *testing.T) {
	var prompts bytes.Buffer
	in := NewIn(strings.NewReader("Hero\n1\n"), &prompts)

	name, err := in.Read("name: ")
	if err != nil {
		t.Fatalf("read name: %v", err)
	}
	if name != "Hero" {
		t.Fatalf("name = %q, want %q", name, "Hero")
	}

	choice, err := in.Read("choose: ")
	if err != nil {
		t.Fatalf("read choice: %v", err)
	}
	if choice != "1" {
		t.Fatalf("choice = %q, want %q", choice, "1")
	}

	if prompts.String() != "name: choose: " {
		t.Fatalf("prompts = %q", prompts.String())
	}
}

func TestInStripsCarriageReturn(t *testing.T) {
	in := NewIn(strings.NewReader("Hero\r\n"), io.Discard)

	line, err := in.Read("> ")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "Hero" {
		t.Fatalf("line = %q, want %q", line, "Hero")
	}
}

func TestInReturnsFinalLineWithoutNewline(t *testing.T) {
	in := NewIn(strings.NewReader("last"), io.Discard)

	line, err := in.Read("> ")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != "last" {
		t.Fatalf("line = %q, want %q", line, "last")
	}

	if _, err := in.Read("> "); !errors.Is(err, io.EOF) {
		t.Fatalf("error = %v, want EOF", err)
	}
}

func TestInPropagatesEOF(t *testing.T) {
	in := NewIn(strings.NewReader(""), io.Discard)

	if _, err := in.Read("> "); !errors.Is(err, io.EOF) {
		t.Fatalf("error = %v, want EOF", err)
	}
}

func TestOutWritesOneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	out := NewOut(&buf)

	out.Write("first")
	out.Write("second")

	if buf.String() != "first\nsecond\n" {
		t.Fatalf("output = %q", buf.String())
	}
}
