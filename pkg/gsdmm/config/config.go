package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/gsdmm/pkg/gsdmm/internalerr"
)

// Run holds the clustering parameters for one run.
type Run struct {
	K     int     `yaml:"k"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Iters int     `yaml:"iters"`
	Seed  int64   `yaml:"seed"`
	TopN  int     `yaml:"top_n"` // words per cluster in reports
}

// DefaultRun returns the hyperparameters from the reference paper.
func DefaultRun() Run {
	return Run{K: 8, Alpha: 0.1, Beta: 0.1, Iters: 30, Seed: 1, TopN: 10}
}

// LoadRun loads run parameters from a YAML file, filling unset fields
// from DefaultRun.
func LoadRun(path string) (Run, error) {
	run := DefaultRun()

	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, err
	}
	if err := yaml.Unmarshal(data, &run); err != nil {
		return Run{}, err
	}

	if run.K <= 0 || run.Iters < 0 || run.Alpha < 0 || run.Beta < 0 {
		return Run{}, fmt.Errorf("%s: %w", path, internalerr.ErrInvalidConfig)
	}
	return run, nil
}

// Stoplist represents the stopword list configuration.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
