package stats

// Table holds the sufficient statistics of the mixture model: per-cluster
// document counts, per-cluster token totals, and per-cluster sparse word
// frequencies. It is pure bookkeeping: no randomness, no I/O.
type Table struct {
	docs   []int            // documents per cluster (m_z)
	tokens []int            // total token count per cluster (n_z)
	words  []map[string]int // word frequency per cluster, zero entries deleted
}

// New creates an empty table with capacity for k clusters.
func New(k int) *Table {
	t := &Table{
		docs:   make([]int, k),
		tokens: make([]int, k),
		words:  make([]map[string]int, k),
	}
	for z := range t.words {
		t.words[z] = make(map[string]int)
	}
	return t
}

// K returns the cluster capacity.
func (t *Table) K() int {
	return len(t.docs)
}

// Add records a document under cluster label z.
func (t *Table) Add(doc []string, z int) {
	t.docs[z]++
	t.tokens[z] += len(doc)
	for _, w := range doc {
		t.words[z][w]++
	}
}

// Remove undoes a prior Add of the same document under the same label.
// Word entries that reach zero are deleted so the maps stay proportional
// to the tokens actually present.
func (t *Table) Remove(doc []string, z int) {
	t.docs[z]--
	t.tokens[z] -= len(doc)
	for _, w := range doc {
		t.words[z][w]--
		if t.words[z][w] == 0 {
			delete(t.words[z], w)
		}
	}
}

// Docs returns the number of documents currently assigned to z.
func (t *Table) Docs(z int) int {
	return t.docs[z]
}

// Tokens returns the total token count of documents assigned to z.
func (t *Table) Tokens(z int) int {
	return t.tokens[z]
}

// WordCount returns the occurrence count of w among documents assigned
// to z, zero if absent.
func (t *Table) WordCount(z int, w string) int {
	return t.words[z][w]
}

// Populated returns the number of clusters holding at least one document.
func (t *Table) Populated() int {
	var n int
	for _, m := range t.docs {
		if m > 0 {
			n++
		}
	}
	return n
}
