package surface

import (
	"strings"
	"testing"

	"tableflip.dev/quill/pkg/session"
)

func TestContentRoundTrip(t *testing.T) {
	e := New()
	e.SetContent("<p>hello</p>")
	if got := e.Content(); got != "<p>hello</p>" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyWrapsCurrentLine(t *testing.T) {
	e := New()
	e.SetContent("hello")
	if err := e.Apply(session.CmdBold, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := e.Content(); got != "<b>hello</b>" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyHeadingAndList(t *testing.T) {
	e := New()
	e.SetContent("topic")
	if err := e.Apply(session.CmdHeading, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := e.Content(); got != "<h2>topic</h2>" {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyLinkAppends(t *testing.T) {
	e := New()
	e.SetContent("see")
	if err := e.Apply(session.CmdLink, "https://example.com"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := e.Content(); !strings.Contains(got, `<a href="https://example.com">https://example.com</a>`) {
		t.Fatalf("content = %q", got)
	}
}

func TestApplyClearFormat(t *testing.T) {
	e := New()
	e.SetContent("<h2>Title</h2><p>body <b>bold</b></p>")
	if err := e.Apply(session.CmdClearFormat, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := e.Content(); strings.ContainsAny(got, "<>") {
		t.Fatalf("markup survived clear: %q", got)
	}
}

func TestApplyBlankLineUntouched(t *testing.T) {
	e := New()
	e.SetContent("")
	if err := e.Apply(session.CmdBold, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := e.Content(); got != "" {
		t.Fatalf("blank line must stay blank, got %q", got)
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	e := New()
	e.SetContent("x")
	if err := e.Apply(session.Command("made-up"), ""); err == nil {
		t.Fatalf("expected an error")
	}
}
