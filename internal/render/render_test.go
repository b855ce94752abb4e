package render

import (
	"strings"
	"testing"

	"github.com/marcus/quicknotes/internal/notes"
)

func TestRender_AddCardFirst(t *testing.T) {
	tree := Render(nil)
	if len(tree.Cards) != 1 {
		t.Fatalf("expected only the add card, got %d cards", len(tree.Cards))
	}
	if tree.Cards[0].Kind != CardAdd {
		t.Errorf("expected first card to be the add card, got kind %v", tree.Cards[0].Kind)
	}
	if tree.Cards[0].Title != AddLabel {
		t.Errorf("expected add label %q, got %q", AddLabel, tree.Cards[0].Title)
	}
	if len(tree.Notes()) != 0 {
		t.Errorf("expected no note cards, got %d", len(tree.Notes()))
	}
}

func TestRender_CardsFollowCollectionOrder(t *testing.T) {
	collection := []notes.Note{
		{ID: "b", Title: "Second", Body: "two", Date: "Oct 18, 2026"},
		{ID: "a", Title: "First", Body: "one", Date: "Oct 17, 2026"},
	}

	tree := Render(collection)
	if len(tree.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(tree.Cards))
	}

	for i, n := range collection {
		c := tree.Cards[i+1]
		if c.Kind != CardNote {
			t.Errorf("card %d: expected note card", i+1)
		}
		if c.NoteID != n.ID || c.Title != n.Title || c.Body != n.Body || c.Date != n.Date {
			t.Errorf("card %d = %+v, want fields of %+v", i+1, c, n)
		}
		if len(c.Actions) != 2 {
			t.Fatalf("card %d: expected edit and delete actions, got %v", i+1, c.Actions)
		}
		if got := c.Actions[0].Key(); got != "edit:"+n.ID {
			t.Errorf("card %d: edit action key %q", i+1, got)
		}
		if got := c.Actions[1].Key(); got != "delete:"+n.ID {
			t.Errorf("card %d: delete action key %q", i+1, got)
		}
	}
}

func TestRender_KeepsRawText(t *testing.T) {
	tree := Render([]notes.Note{{ID: "x", Title: "<b>bold</b>", Body: "<script>alert(1)</script>"}})
	c := tree.Notes()[0]
	if c.Title != "<b>bold</b>" || c.Body != "<script>alert(1)</script>" {
		t.Errorf("render must not rewrite text, got %+v", c)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"keeps newlines", "a\nb", "a\nb"},
		{"tabs to spaces", "a\tb", "a b"},
		{"strips sgr", "\x1b[31mred\x1b[0m", "red"},
		{"strips osc title", "\x1b]0;pwned\x07text", "text"},
		{"drops bell and nul", "a\x07b\x00c", "abc"},
		{"unicode survives", "café ✓", "café ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("expected no truncation, got %q", got)
	}
	got := Truncate("a long title that overflows", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis, got %q", got)
	}
	if Truncate("anything", 0) != "" {
		t.Error("zero width should yield empty string")
	}
}

func TestLines(t *testing.T) {
	got := Lines("abcdefghij", 4, 10)
	want := []string{"abcd", "efgh", "ij"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Lines wrap = %q, want %q", got, want)
	}

	got = Lines("one\ntwo\nthree\nfour", 10, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	if got[0] != "one" || !strings.HasSuffix(got[1], "…") {
		t.Errorf("expected clipped output with ellipsis, got %q", got)
	}

	if Lines("x", 0, 3) != nil {
		t.Error("zero width should yield nil")
	}
}
