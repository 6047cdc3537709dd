package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")

	content := `{"url":"https://example.com/1","title":"Go 1.25 released","text":"The Go team released Go 1.25"}
not json at all

{"url":"https://example.com/2","title":"Rust vs Go","text":""}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := LoadFromJSONL(path)
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (malformed line skipped)", len(items))
	}
	if items[0].Title != "Go 1.25 released" {
		t.Errorf("items[0].Title = %q", items[0].Title)
	}
	if items[1].URL != "https://example.com/2" {
		t.Errorf("items[1].URL = %q", items[1].URL)
	}
}

func TestLoadFromJSONLNoValidItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")
	if err := os.WriteFile(path, []byte("\n\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromJSONL(path); err == nil {
		t.Error("expected error for a corpus with no valid items")
	}
}

func TestTokenizeAll(t *testing.T) {
	tok := NewTokenizer([]string{"the"})
	items := []Item{
		{Title: "The memory model", Text: "memory ordering rules"},
		{Title: "Scheduler internals", Text: ""},
	}

	docs, vocab := TokenizeAll(tok, items)
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if got := len(docs[0]); got != 5 {
		t.Errorf("docs[0] has %d tokens, want 5: %v", got, docs[0])
	}
	// memory model ordering rules scheduler internals
	if got := vocab.Len(); got != 6 {
		t.Errorf("vocab.Len = %d, want 6", got)
	}
}
