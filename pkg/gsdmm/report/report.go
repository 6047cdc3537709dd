// Package report summarizes a finished clustering run for display.
package report

import (
	"fmt"
	"io"
	"sort"
)

// WordCount is one token with its frequency inside a cluster.
type WordCount struct {
	Token string
	Count int
}

// Cluster summarizes one populated cluster.
type Cluster struct {
	Label    int
	Docs     int
	TopWords []WordCount
}

// Summarize aggregates documents by their assigned label and returns
// the populated clusters ordered by descending size, each with its topN
// most frequent tokens.
func Summarize(docs [][]string, labels []int, topN int) []Cluster {
	byLabel := make(map[int]*Cluster)
	counts := make(map[int]map[string]int)

	for i, doc := range docs {
		z := labels[i]
		c, ok := byLabel[z]
		if !ok {
			c = &Cluster{Label: z}
			byLabel[z] = c
			counts[z] = make(map[string]int)
		}
		c.Docs++
		for _, w := range doc {
			counts[z][w]++
		}
	}

	clusters := make([]Cluster, 0, len(byLabel))
	for z, c := range byLabel {
		c.TopWords = topWords(counts[z], topN)
		clusters = append(clusters, *c)
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Docs != clusters[j].Docs {
			return clusters[i].Docs > clusters[j].Docs
		}
		return clusters[i].Label < clusters[j].Label
	})
	return clusters
}

// Print writes one line per cluster: label, size, and top words with
// their counts.
func Print(w io.Writer, clusters []Cluster) {
	for _, c := range clusters {
		fmt.Fprintf(w, "cluster %d (%d docs):", c.Label, c.Docs)
		for _, wc := range c.TopWords {
			fmt.Fprintf(w, " %s (%d)", wc.Token, wc.Count)
		}
		fmt.Fprintln(w)
	}
}

func topWords(freq map[string]int, n int) []WordCount {
	words := make([]WordCount, 0, len(freq))
	for w, c := range freq {
		words = append(words, WordCount{Token: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Token < words[j].Token
	})
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return words
}
