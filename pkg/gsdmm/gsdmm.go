// Package gsdmm clusters short text documents with a collapsed Gibbs
// sampler for the Dirichlet Multinomial Mixture model (Yin and Wang 2014).
// Each document belongs to exactly one latent cluster; the sampler
// repeatedly reassigns documents until the caller-supplied iteration
// budget is spent.
package gsdmm

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/cognicore/gsdmm/pkg/gsdmm/internalerr"
	"github.com/cognicore/gsdmm/pkg/gsdmm/sampling"
	"github.com/cognicore/gsdmm/pkg/gsdmm/stats"
)

// Config holds the model hyperparameters.
type Config struct {
	// K is the upper bound on the number of clusters. Typically many
	// fewer end up populated.
	K int
	// Alpha controls a document's affinity for sparsely populated
	// clusters. When zero, no document joins an empty cluster.
	Alpha float64
	// Beta controls affinity for clusters with overlapping vocabulary
	// versus plain popularity.
	Beta float64
	// NIters is the number of full sweeps over the corpus.
	NIters int
}

// Sweep describes one completed pass over the corpus.
type Sweep struct {
	Index     int // zero-based sweep number
	Transfers int // documents that changed cluster this sweep
	Populated int // clusters currently holding at least one document
}

// Observer receives one event per completed sweep. It is a monitoring
// hook only; the sampler never depends on it.
type Observer interface {
	SweepDone(Sweep)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Sweep)

// SweepDone implements Observer.
func (f ObserverFunc) SweepDone(s Sweep) { f(s) }

// LogObserver writes one line per sweep via the standard logger.
func LogObserver() Observer {
	return ObserverFunc(func(s Sweep) {
		log.Printf("sweep %d: transferred %d documents, %d clusters populated",
			s.Index, s.Transfers, s.Populated)
	})
}

type noopObserver struct{}

func (noopObserver) SweepDone(Sweep) {}

// Options configures a Model.
type Options struct {
	Config Config
	// Rand is the sequential random source for all draws. When nil the
	// model seeds one from the clock; supply a seeded source for
	// reproducible runs.
	Rand *rand.Rand
	// Observer receives per-sweep progress events. Defaults to a no-op.
	Observer Observer
}

// Model is the Gibbs sampling engine.
type Model struct {
	cfg Config
	rng *rand.Rand
	obs Observer
}

// New validates the configuration and creates a Model.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg.K <= 0 {
		return nil, fmt.Errorf("K = %d: %w", cfg.K, internalerr.ErrInvalidConfig)
	}
	if cfg.NIters < 0 {
		return nil, fmt.Errorf("NIters = %d: %w", cfg.NIters, internalerr.ErrInvalidConfig)
	}
	if cfg.Alpha < 0 || cfg.Beta < 0 {
		return nil, fmt.Errorf("alpha = %g, beta = %g: %w",
			cfg.Alpha, cfg.Beta, internalerr.ErrInvalidConfig)
	}

	m := &Model{cfg: cfg, rng: opts.Rand, obs: opts.Observer}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.obs == nil {
		m.obs = noopObserver{}
	}
	return m, nil
}

// Fit clusters the documents and returns one cluster label per document,
// each in [0, K). Documents are ordered token sequences; repeats count.
// vocabSize must upper-bound the number of distinct tokens observed.
// An undersized vocabulary biases the word likelihood, so it is rejected
// up front. The context is checked between sweeps only; a sweep never
// stops midway.
func (m *Model) Fit(ctx context.Context, docs [][]string, vocabSize int) ([]int, error) {
	if distinct := countDistinct(docs); vocabSize < distinct {
		return nil, fmt.Errorf("vocabSize %d < %d distinct tokens: %w",
			vocabSize, distinct, internalerr.ErrVocabExceeded)
	}
	if len(docs) == 0 {
		return []int{}, nil
	}

	table := stats.New(m.cfg.K)
	sampler := sampling.New(m.rng)
	labels := make([]int, len(docs))

	for i, doc := range docs {
		z, err := sampler.Uniform(m.cfg.K)
		if err != nil {
			return nil, err
		}
		labels[i] = z
		table.Add(doc, z)
	}

	weights := make([]float64, m.cfg.K)
	for it := 0; it < m.cfg.NIters; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		transfers := 0
		for i, doc := range docs {
			zOld := labels[i]
			table.Remove(doc, zOld)

			m.scores(weights, doc, table, len(docs), vocabSize)
			zNew, err := sampler.Draw(weights)
			if err != nil {
				return nil, fmt.Errorf("sweep %d, document %d: %w", it, i, err)
			}

			if zNew != zOld {
				transfers++
			}
			table.Add(doc, zNew)
			labels[i] = zNew
		}
		m.obs.SweepDone(Sweep{
			Index:     it,
			Transfers: transfers,
			Populated: table.Populated(),
		})
	}
	return labels, nil
}

// scores fills weights with the unnormalized reassignment distribution
// for doc, which must already be removed from the table. For each label
// the weight combines a popularity term and the Pólya-urn likelihood of
// the document's token multiset. Numerator and denominator accumulate as
// linear sums and are logged once each, matching the reference sampler.
// Any total that is not strictly positive contributes log 0 instead of
// -Inf, so empty clusters and zero-overlap vocabularies keep a finite
// weight.
func (m *Model) scores(weights []float64, doc []string, table *stats.Table, d, vocabSize int) {
	lD1 := safeLog(float64(d-1) + float64(m.cfg.K)*m.cfg.Alpha)
	for z := 0; z < m.cfg.K; z++ {
		lN1 := safeLog(float64(table.Docs(z)) + m.cfg.Alpha)

		var numSum, denSum float64
		for _, w := range doc {
			numSum += float64(table.WordCount(z, w)) + m.cfg.Beta
		}
		base := float64(table.Tokens(z)) + float64(vocabSize)*m.cfg.Beta
		for j := 0; j < len(doc); j++ {
			denSum += base + float64(j)
		}

		weights[z] = math.Exp(lN1 - lD1 + safeLog(numSum) - safeLog(denSum))
	}
}

// safeLog is log for positive x and 0 otherwise.
func safeLog(x float64) float64 {
	if x > 0 {
		return math.Log(x)
	}
	return 0
}

func countDistinct(docs [][]string) int {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, w := range doc {
			seen[w] = struct{}{}
		}
	}
	return len(seen)
}
