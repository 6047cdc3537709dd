package ingest

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Item represents one raw corpus document before tokenization.
type Item struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Outlet      string    `json:"outlet"`
	PublishedAt time.Time `json:"published_at"`
	Text        string    `json:"text"`
}

// LoadFromJSONL loads corpus items from a JSONL file, skipping
// malformed lines with a warning.
func LoadFromJSONL(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []Item
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}

	return items, nil
}

// TokenizeAll runs the tokenizer over every item's title and text,
// producing one token sequence per item and the corpus vocabulary.
func TokenizeAll(tok *Tokenizer, items []Item) ([][]string, *Vocabulary) {
	docs := make([][]string, len(items))
	vocab := NewVocabulary()
	for i, item := range items {
		docs[i] = tok.Tokenize(item.Title + " " + item.Text)
		vocab.Add(docs[i])
	}
	return docs, vocab
}
