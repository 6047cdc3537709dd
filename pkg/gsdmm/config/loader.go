package config

import (
	"fmt"

	"github.com/cognicore/gsdmm/pkg/gsdmm/ingest"
)

// Loader loads configuration files and constructs ingest components.
type Loader struct {
	RunPath      string
	StoplistPath string
}

// Components holds the loaded run parameters and ingest components.
type Components struct {
	Run       Run
	Tokenizer *ingest.Tokenizer
}

// Load reads the configuration files and returns initialized components.
// Missing paths fall back to defaults (empty stoplist, DefaultRun).
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Run: DefaultRun()}

	if l.RunPath != "" {
		run, err := LoadRun(l.RunPath)
		if err != nil {
			return nil, fmt.Errorf("load run config: %w", err)
		}
		comp.Run = run
	}

	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Tokenizer = ingest.NewTokenizer(stoplist.Terms)
	} else {
		comp.Tokenizer = ingest.NewTokenizer(nil)
	}

	return comp, nil
}
