package logger

// Standard field names for consistent structured logging across clausal.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID     = "run_id"
	FieldComponent = "component"

	// Corpus and training
	FieldCorpus  = "corpus"
	FieldRows    = "rows"
	FieldColumns = "columns"
	FieldTarget  = "target"
	FieldSeed    = "seed"
	FieldTrees   = "trees"

	// Evaluation
	FieldFolds    = "folds"
	FieldAccuracy = "accuracy"
	FieldBaseline = "baseline"

	// Timing
	FieldDuration = "duration"
)
