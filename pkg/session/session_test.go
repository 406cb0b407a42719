package session

import (
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/quill/pkg/note"
)

type fakeSurface struct {
	content   string
	cursorEnd int
	focused   int
	applied   []string
	applyErr  error
}

func (f *fakeSurface) Content() string { return f.content }

func (f *fakeSurface) SetContent(html string) { f.content = html }

func (f *fakeSurface) MoveCursorEnd() { f.cursorEnd++ }

func (f *fakeSurface) Focus() { f.focused++ }

func (f *fakeSurface) Apply(cmd Command, arg string) error {
	f.applied = append(f.applied, string(cmd)+":"+arg)
	return f.applyErr
}

type fakePrompter struct {
	text string
	ok   bool
}

func (f fakePrompter) Prompt(string) (string, bool) { return f.text, f.ok }

func TestOpenLoadsDrafts(t *testing.T) {
	surf := &fakeSurface{}
	s := New(surf)

	s.Open(note.Note{ID: "n1", Title: "Trip", Content: "<p>x</p>", Tags: []string{"a", "b"}})

	if !s.Editing() || s.EditingID() != "n1" {
		t.Fatalf("expected editing n1")
	}
	if s.TitleInput != "Trip" || s.TagInput != "a, b" {
		t.Fatalf("drafts = %q / %q", s.TitleInput, s.TagInput)
	}
	if s.Preview() {
		t.Fatalf("preview must reset on open")
	}
	if surf.content != "<p>x</p>" || surf.cursorEnd != 1 || surf.focused != 1 {
		t.Fatalf("surface not primed: %+v", surf)
	}
}

func TestSaveNormalizes(t *testing.T) {
	surf := &fakeSurface{}
	s := New(surf)
	s.Open(note.Note{ID: "n1"})

	surf.content = "<p>body</p>"
	s.TitleInput = "   "
	s.TagInput = " a, , b ,b"

	r, ok := s.Save()
	if !ok {
		t.Fatalf("expected active session")
	}
	if r.ID != "n1" || r.Title != note.DefaultTitle || r.Content != "<p>body</p>" {
		t.Fatalf("result = %+v", r)
	}
	if !reflect.DeepEqual(r.Tags, []string{"a", "b", "b"}) {
		t.Fatalf("tags = %v", r.Tags)
	}
	if s.Editing() {
		t.Fatalf("save must close the session")
	}
}

func TestSaveWhenClosed(t *testing.T) {
	s := New(&fakeSurface{})
	if _, ok := s.Save(); ok {
		t.Fatalf("closed session must not save")
	}
}

func TestCancelDiscardsDrafts(t *testing.T) {
	surf := &fakeSurface{}
	s := New(surf)
	s.Open(note.Note{ID: "n1", Title: "Keep"})

	s.TitleInput = "Changed"
	s.TagInput = "new"
	surf.content = "<p>changed</p>"
	s.Cancel()

	if s.Editing() || s.TitleInput != "" || s.TagInput != "" {
		t.Fatalf("cancel must clear draft state")
	}
	// Nothing to assert on the store side: cancel never produces a Result,
	// so there is no commit path to have taken.
}

func TestForgetIf(t *testing.T) {
	s := New(&fakeSurface{})
	s.Open(note.Note{ID: "n1"})

	s.ForgetIf("other")
	if !s.Editing() {
		t.Fatalf("unrelated delete must not close the session")
	}
	s.ForgetIf("n1")
	if s.Editing() {
		t.Fatalf("deleting the edited note must close the session")
	}
}

func TestTogglePreview(t *testing.T) {
	s := New(&fakeSurface{})
	s.TogglePreview()
	if s.Preview() {
		t.Fatalf("preview has no meaning while closed")
	}

	s.Open(note.Note{ID: "n1"})
	s.TogglePreview()
	if !s.Preview() {
		t.Fatalf("expected preview on")
	}
	s.TogglePreview()
	if s.Preview() {
		t.Fatalf("expected preview off")
	}
}

func TestApplyFormatting(t *testing.T) {
	surf := &fakeSurface{}
	s := New(surf)

	s.ApplyFormatting(CmdBold, fakePrompter{})
	if len(surf.applied) != 0 {
		t.Fatalf("closed session must not format")
	}

	s.Open(note.Note{ID: "n1"})
	s.ApplyFormatting(CmdBold, fakePrompter{})
	if !reflect.DeepEqual(surf.applied, []string{"bold:"}) {
		t.Fatalf("applied = %v", surf.applied)
	}

	s.TogglePreview()
	s.ApplyFormatting(CmdItalic, fakePrompter{})
	if len(surf.applied) != 1 {
		t.Fatalf("preview mode must not format")
	}
}

func TestApplyFormattingLink(t *testing.T) {
	surf := &fakeSurface{}
	s := New(surf)
	s.Open(note.Note{ID: "n1"})

	s.ApplyFormatting(CmdLink, fakePrompter{text: "", ok: false})
	s.ApplyFormatting(CmdLink, fakePrompter{text: "", ok: true})
	if len(surf.applied) != 0 {
		t.Fatalf("link without a URL must not format, got %v", surf.applied)
	}

	s.ApplyFormatting(CmdLink, fakePrompter{text: "https://example.com", ok: true})
	if !reflect.DeepEqual(surf.applied, []string{"link:https://example.com"}) {
		t.Fatalf("applied = %v", surf.applied)
	}
}

func TestApplyFormattingSwallowsSurfaceErrors(t *testing.T) {
	surf := &fakeSurface{applyErr: errors.New("cursor out of range")}
	s := New(surf)
	s.Open(note.Note{ID: "n1"})

	s.ApplyFormatting(CmdBold, fakePrompter{}) // must not panic or surface
	if len(surf.applied) != 1 {
		t.Fatalf("command should still reach the surface")
	}
}
