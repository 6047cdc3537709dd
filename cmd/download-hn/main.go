// Command download-hn fetches Hacker News story titles and writes them
// as a JSONL corpus of short documents for gsdmm-cluster.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/cognicore/gsdmm/pkg/gsdmm/ingest"
)

// Hacker News API endpoints
const (
	apiBase       = "https://hacker-news.firebaseio.com/v0"
	topStoriesURL = apiBase + "/topstories.json"
	itemURL       = apiBase + "/item/%d.json"
)

// hnItem represents a Hacker News story.
type hnItem struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Time  int64  `json:"time"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

func main() {
	var (
		count  = flag.Int("count", 100, "Number of top stories to fetch")
		output = flag.String("output", "testdata/hn/docs.jsonl", "Output JSONL path")
	)
	flag.Parse()

	log.Printf("Downloading top %d Hacker News stories...", *count)

	storyIDs, err := getTopStories()
	if err != nil {
		log.Fatalf("get top stories: %v", err)
	}
	if *count < len(storyIDs) {
		storyIDs = storyIDs[:*count]
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}
	outFile, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create output file: %v", err)
	}
	defer outFile.Close()

	encoder := json.NewEncoder(outFile)
	downloaded := 0

	for _, id := range storyIDs {
		item, err := getItem(id)
		if err != nil {
			log.Printf("Failed to get item %d: %v", id, err)
			continue
		}
		if item.Type != "story" || item.Title == "" {
			continue
		}

		doc := ingest.Item{
			URL:         fmt.Sprintf("https://news.ycombinator.com/item?id=%d", item.ID),
			Title:       item.Title,
			Outlet:      "news.ycombinator.com",
			PublishedAt: time.Unix(item.Time, 0),
			Text:        stripHTML(item.Text),
		}
		if err := encoder.Encode(doc); err != nil {
			log.Printf("Failed to encode doc: %v", err)
			continue
		}

		downloaded++
		if downloaded%10 == 0 {
			log.Printf("Downloaded %d stories...", downloaded)
		}

		// Be nice to the API
		time.Sleep(50 * time.Millisecond)
	}

	log.Printf("Downloaded %d stories to %s", downloaded, *output)
}

func getTopStories() ([]int64, error) {
	resp, err := http.Get(topStoriesURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var ids []int64
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func getItem(id int64) (*hnItem, error) {
	resp, err := http.Get(fmt.Sprintf(itemURL, id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var item hnItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// stripHTML extracts the text content of an HTML fragment. HN item
// text arrives as escaped HTML.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
