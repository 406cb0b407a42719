package note

import (
	"reflect"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	n := New()
	if n.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if n.Title != DefaultTitle {
		t.Fatalf("expected title %q, got %q", DefaultTitle, n.Title)
	}
	if n.Content != "" {
		t.Fatalf("expected empty content, got %q", n.Content)
	}
	if len(n.Tags) != 0 {
		t.Fatalf("expected no tags, got %v", n.Tags)
	}
	if n.Pinned {
		t.Fatalf("new notes must not be pinned")
	}
	if n.UpdatedAt == 0 {
		t.Fatalf("expected a timestamp")
	}
}

func TestNewUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := New()
		if seen[n.ID] {
			t.Fatalf("duplicate id %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestDuplicate(t *testing.T) {
	src := Note{
		ID:        "src",
		Title:     "Groceries",
		Content:   "<p>milk</p>",
		Tags:      []string{"home", "food"},
		Pinned:    true,
		UpdatedAt: 1000,
	}
	cp := Duplicate(src)
	if cp.ID == src.ID || cp.ID == "" {
		t.Fatalf("expected a fresh id, got %q", cp.ID)
	}
	if cp.Title != "Groceries (copy)" {
		t.Fatalf("expected copy suffix, got %q", cp.Title)
	}
	if cp.Content != src.Content || cp.Pinned != src.Pinned {
		t.Fatalf("expected content and pin state to carry over")
	}
	if !reflect.DeepEqual(cp.Tags, src.Tags) {
		t.Fatalf("expected tags %v, got %v", src.Tags, cp.Tags)
	}
	if cp.UpdatedAt <= src.UpdatedAt {
		t.Fatalf("expected a newer timestamp, got %d", cp.UpdatedAt)
	}

	cp.Tags[0] = "mutated"
	if src.Tags[0] != "home" {
		t.Fatalf("duplicate must not alias the source tags")
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"  Plans  ": "Plans",
		"":          DefaultTitle,
		"   ":       DefaultTitle,
	}
	for in, want := range cases {
		if got := NormalizeTitle(in); got != want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags(" a, , b ,b")
	want := []string{"a", "b", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseTags = %v, want %v", got, want)
	}
	if got := ParseTags("  , ,"); len(got) != 0 {
		t.Fatalf("expected no tags, got %v", got)
	}
}

func TestJoinTagsRoundTrip(t *testing.T) {
	tags := []string{"a", "b", "c"}
	if got := ParseTags(JoinTags(tags)); !reflect.DeepEqual(got, tags) {
		t.Fatalf("round trip = %v, want %v", got, tags)
	}
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>hello <b>world</b></p>", "hello world"},
		{"plain", "plain"},
		{"<ul><li>one</li><li>two</li></ul>", "one\ntwo"},
		{"a &amp; b", "a & b"},
		{"<h2>Title</h2>body", "Title\nbody"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := PlainText(tc.in); got != tc.want {
			t.Errorf("PlainText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSearchText(t *testing.T) {
	n := Note{Title: "Trip Plans", Content: "<p>Pack <b>Sunscreen</b></p>"}
	got := n.SearchText()
	if got != "trip plans pack sunscreen" {
		t.Fatalf("SearchText = %q", got)
	}
}
