// Command gsdmm-cluster clusters a JSONL corpus of short documents and
// prints a per-cluster summary. With -db the run and its assignments
// are also persisted to a SQLite database.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/cognicore/gsdmm/pkg/gsdmm"
	"github.com/cognicore/gsdmm/pkg/gsdmm/config"
	"github.com/cognicore/gsdmm/pkg/gsdmm/ingest"
	"github.com/cognicore/gsdmm/pkg/gsdmm/report"
	"github.com/cognicore/gsdmm/pkg/gsdmm/store"
	"github.com/cognicore/gsdmm/pkg/gsdmm/store/sqlite"
)

func main() {
	var (
		input       = flag.String("input", "", "Path to JSONL corpus (required)")
		runCfg      = flag.String("config", "", "Optional: run parameters YAML")
		stoplistCfg = flag.String("stoplist", "", "Optional: stoplist YAML")
		dbPath      = flag.String("db", "", "Optional: SQLite database to persist the run")
		quiet       = flag.Bool("quiet", false, "Suppress per-sweep progress lines")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	ctx := context.Background()

	loader := config.Loader{RunPath: *runCfg, StoplistPath: *stoplistCfg}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}
	run := components.Run

	items, err := ingest.LoadFromJSONL(*input)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}
	docs, vocab := ingest.TokenizeAll(components.Tokenizer, items)
	log.Printf("loaded %d documents, %d distinct tokens", len(docs), vocab.Len())

	var obs gsdmm.Observer
	if !*quiet {
		obs = gsdmm.LogObserver()
	}
	model, err := gsdmm.New(gsdmm.Options{
		Config: gsdmm.Config{
			K:      run.K,
			Alpha:  run.Alpha,
			Beta:   run.Beta,
			NIters: run.Iters,
		},
		Rand:     rand.New(rand.NewSource(run.Seed)),
		Observer: obs,
	})
	if err != nil {
		log.Fatalf("configure model: %v", err)
	}

	labels, err := model.Fit(ctx, docs, vocab.Len())
	if err != nil {
		log.Fatalf("fit: %v", err)
	}

	clusters := report.Summarize(docs, labels, run.TopN)
	report.Print(os.Stdout, clusters)

	if *dbPath != "" {
		if err := saveRun(ctx, *dbPath, run, vocab.Len(), items, labels); err != nil {
			log.Fatalf("save run: %v", err)
		}
	}
}

func saveRun(ctx context.Context, path string, run config.Run, vocabSize int,
	items []ingest.Item, labels []int) error {

	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	rec := store.Run{
		ID:        store.NewRunID(),
		CreatedAt: time.Now(),
		K:         run.K,
		Alpha:     run.Alpha,
		Beta:      run.Beta,
		Iters:     run.Iters,
		Seed:      run.Seed,
		VocabSize: vocabSize,
	}
	for i, item := range items {
		rec.Assignments = append(rec.Assignments, store.Assignment{
			DocIndex: i,
			URL:      item.URL,
			Title:    item.Title,
			Label:    labels[i],
		})
	}

	if err := db.SaveRun(ctx, rec); err != nil {
		return err
	}
	log.Printf("saved run %s to %s", rec.ID, path)
	return nil
}
