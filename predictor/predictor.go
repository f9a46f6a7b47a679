// Package predictor trains one ensemble classifier per predictable contract
// term and predicts unknown terms from a partial set of known ones. A
// Predictor is Unfitted until Fit succeeds; Predict, Evaluate and
// FeatureImportance fail before that. Re-fitting discards all prior state.
//
// A fitted Predictor is read-only: concurrent Predict/Evaluate calls are safe
// as long as Fit is not running. Serializing re-fits against readers is the
// caller's job.
package predictor

import (
	"math"
	"time"

	"github.com/parchmint/clausal/corpus"
	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/forest"
	"github.com/parchmint/clausal/logger"
	"github.com/parchmint/clausal/taxonomy"
)

// Options configures a Predictor. Zero values fall back to the reference
// training setup, so Seed 0 means the default seed 42; callers who want a
// distinct deterministic run must pick a nonzero seed.
type Options struct {
	Trees    int   // trees per target model (default 100)
	MaxDepth int   // per-tree depth bound (default 5)
	MinLeaf  int   // minimum samples per leaf (default 10)
	Seed     int64 // randomization seed; 0 selects the default 42
	MinRows  int   // training floor after cleaning (default 50)
}

func (o Options) withDefaults() Options {
	if o.Trees == 0 {
		o.Trees = 100
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = 5
	}
	if o.MinLeaf == 0 {
		o.MinLeaf = 10
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	if o.MinRows == 0 {
		o.MinRows = 50
	}
	return o
}

func (o Options) forestConfig() forest.Config {
	return forest.Config{
		Trees:    o.Trees,
		MaxDepth: o.MaxDepth,
		MinLeaf:  o.MinLeaf,
		Seed:     o.Seed,
	}
}

// Prediction is the predicted class code for one term and the probability
// mass the model assigned to that exact class.
type Prediction struct {
	Prediction  int     `json:"prediction"`
	Probability float64 `json:"probability"`
}

// targetModel pairs a trained forest with the ordered feature columns it was
// trained on and their fit-time medians (the fixed imputation values).
type targetModel struct {
	forest   *forest.Forest
	features []string
	medians  []float64
}

// Predictor predicts unknown contract terms from known ones using patterns
// learned from a reference corpus.
type Predictor struct {
	opts   Options
	table  *corpus.Table
	models map[string]*targetModel
	fitted bool
}

// New creates an unfitted Predictor.
func New(opts Options) *Predictor {
	return &Predictor{opts: opts.withDefaults()}
}

// Fit loads the corpus at path, builds the working table, and trains one
// model per predictable term. Any previous models are discarded.
func (p *Predictor) Fit(path string) error {
	start := time.Now()

	table, err := corpus.Load(path, p.opts.MinRows)
	if err != nil {
		return err
	}

	models := make(map[string]*targetModel)
	for _, target := range taxonomy.PredictableNames() {
		features := featuresFor(target)

		X, err := table.Matrix(features)
		if err != nil {
			return err
		}
		y, err := table.Classes(target)
		if err != nil {
			return err
		}

		f, err := forest.Train(X, y, p.opts.forestConfig())
		if err != nil {
			return errors.Wrapf(err, "training model for %q", target)
		}

		medians := make([]float64, len(features))
		for i, name := range features {
			m, err := table.Median(name)
			if err != nil {
				return err
			}
			medians[i] = m
		}

		models[target] = &targetModel{forest: f, features: features, medians: medians}

		logger.Debugw("Target model trained",
			logger.FieldTarget, target,
			logger.FieldTrees, p.opts.Trees,
			"features", len(features),
		)
	}

	// Swap in the new state only after every target trained
	p.table = table
	p.models = models
	p.fitted = true

	logger.Infow("Predictor fitted",
		logger.FieldCorpus, path,
		logger.FieldRows, table.NumRows(),
		"targets", len(models),
		logger.FieldSeed, p.opts.Seed,
		logger.FieldDuration, time.Since(start),
	)
	return nil
}

// Fitted reports whether Fit has completed successfully.
func (p *Predictor) Fitted() bool {
	return p.fitted
}

// Targets returns the predictable term names in taxonomy order.
func (p *Predictor) Targets() []string {
	return taxonomy.PredictableNames()
}

// Predict predicts every predictable or derived term not present in known.
// Values in known must already be encoded to the taxonomy's code space.
// Known keys are never echoed back; keys outside the taxonomy are ignored.
func (p *Predictor) Predict(known map[string]int) (map[string]Prediction, error) {
	if !p.fitted {
		return nil, errors.Wrap(errors.ErrNotFitted, "predict")
	}

	for name := range known {
		if _, ok := taxonomy.Lookup(name); !ok {
			logger.Debugw("Ignoring unrecognized known term", logger.FieldTarget, name)
		}
	}

	results := make(map[string]Prediction)

	for _, target := range taxonomy.PredictableNames() {
		if _, ok := known[target]; ok {
			continue
		}

		m := p.models[target]
		x := make([]float64, len(m.features))
		for i, name := range m.features {
			if v, ok := known[name]; ok {
				x[i] = float64(v)
			} else {
				x[i] = m.medians[i]
			}
		}

		pred := m.forest.Predict(x)
		proba := m.forest.Proba(x)

		prob := 0.0
		for i, class := range m.forest.Classes() {
			if class == pred {
				prob = proba[i]
				break
			}
		}

		results[target] = Prediction{Prediction: pred, Probability: round3(prob)}
	}

	// Derived terms resolve analytically from their source's realized value,
	// inheriting the source's confidence.
	for _, d := range taxonomy.DerivedColumns() {
		if _, ok := known[d.Name]; ok {
			continue
		}

		var source int
		var prob float64
		if v, ok := known[d.Source]; ok {
			source, prob = v, 1.0
		} else if r, ok := results[d.Source]; ok {
			source, prob = r.Prediction, r.Probability
		} else {
			return nil, errors.AssertionFailedf("derived column %q has unresolvable source %q", d.Name, d.Source)
		}

		results[d.Name] = Prediction{Prediction: d.Transform(source), Probability: prob}
	}

	return results, nil
}

// featuresFor returns the ordered feature list for a target: every taxonomy
// feature column except the target itself.
func featuresFor(target string) []string {
	var out []string
	for _, name := range taxonomy.FeatureNames() {
		if name != target {
			out = append(out, name)
		}
	}
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
