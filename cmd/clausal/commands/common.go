// Package commands implements the clausal CLI subcommands. All prediction
// logic lives in the library packages; commands only parse flags, fit a
// predictor, and render results.
package commands

import (
	"sort"
	"strconv"
	"strings"

	"github.com/parchmint/clausal/config"
	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/predictor"
)

// loadConfig loads and validates configuration, honoring an explicit
// --config path when given.
func loadConfig(configPath string) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// fitPredictor builds a predictor from config and fits it on the corpus,
// honoring a --corpus override.
func fitPredictor(cfg *config.Config, corpusOverride string) (*predictor.Predictor, string, error) {
	path := cfg.Corpus.Path
	if corpusOverride != "" {
		path = corpusOverride
	}

	p := predictor.New(predictor.Options{
		Trees:    cfg.Forest.Trees,
		MaxDepth: cfg.Forest.MaxDepth,
		MinLeaf:  cfg.Forest.MinLeaf,
		Seed:     cfg.Forest.Seed,
		MinRows:  cfg.Corpus.MinRows,
	})
	if err := p.Fit(path); err != nil {
		return nil, "", err
	}
	return p, path, nil
}

// parseTermFlags turns repeated --term "Name=code" flags into a known-terms map.
func parseTermFlags(terms []string) (map[string]int, error) {
	known := make(map[string]int, len(terms))
	for _, raw := range terms {
		name, value, found := strings.Cut(raw, "=")
		if !found {
			return nil, errors.Newf("invalid --term %q, expected \"Name=code\"", raw)
		}
		name = strings.TrimSpace(name)

		code, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --term %q, code must be an integer", raw)
		}
		known[name] = code
	}
	return known, nil
}

// sortedKeys returns map keys in stable alphabetical order for rendering.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
