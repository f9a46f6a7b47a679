package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/config"
	"github.com/parchmint/clausal/display"
	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/history"
	"github.com/parchmint/clausal/logger"
	"github.com/parchmint/clausal/predictor"
)

var (
	predictTerms     []string
	predictCorpus    string
	predictConfig    string
	predictFormat    string
	predictNoHistory bool
)

// PredictCmd represents the predict command
var PredictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict unknown terms from known ones",
	Long: `Predict the likely values of every contract term you haven't supplied.

Values must already be encoded to the taxonomy's code space: 0/1 for yes/no
terms, bucket codes for ordinal terms.

Examples:
  clausal predict --term "Audit Rights=1" --term "Anti-Assignment=0"
  clausal predict --term "Cap On Liability=1" --corpus data/cuad.tsv --format json`,
	RunE: runPredictCommand,
}

func init() {
	PredictCmd.Flags().StringArrayVarP(&predictTerms, "term", "t", nil, `Known term as "Name=code" (repeatable)`)
	PredictCmd.Flags().StringVar(&predictCorpus, "corpus", "", "Corpus TSV path (overrides config)")
	PredictCmd.Flags().StringVar(&predictConfig, "config", "", "Config file path")
	PredictCmd.Flags().StringVarP(&predictFormat, "format", "f", "table", "Output format (table/json)")
	PredictCmd.Flags().BoolVar(&predictNoHistory, "no-history", false, "Do not record this run")
}

func runPredictCommand(cmd *cobra.Command, args []string) error {
	known, err := parseTermFlags(predictTerms)
	if err != nil {
		return err
	}
	if len(known) == 0 {
		return errors.WithHint(errors.New("no known terms supplied"),
			`pass at least one --term "Name=code"`)
	}

	cfg, err := loadConfig(predictConfig)
	if err != nil {
		return err
	}

	p, corpusPath, err := fitPredictor(cfg, predictCorpus)
	if err != nil {
		return err
	}

	results, err := p.Predict(known)
	if err != nil {
		return err
	}

	if !predictNoHistory {
		if err := recordRun(cfg, corpusPath, known, results); err != nil {
			// History is a convenience; a broken database must not hide predictions
			logger.Warnw("Failed to record prediction run", "error", err)
		}
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(results)
	}

	fmt.Printf("Predicted %d terms from %d known\n\n", len(results), len(known))

	data := pterm.TableData{{"Term", "Prediction", "Probability"}}
	for _, term := range sortedKeys(results) {
		r := results[term]
		data = append(data, []string{
			term,
			fmt.Sprintf("%d", r.Prediction),
			fmt.Sprintf("%.3f", r.Probability),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func recordRun(cfg *config.Config, corpusPath string, known map[string]int, results map[string]predictor.Prediction) error {
	db, err := history.Open(cfg.History.Path, logger.Logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := history.Migrate(db, logger.Logger); err != nil {
		return err
	}

	preds := make([]history.Prediction, 0, len(results))
	for _, term := range sortedKeys(results) {
		r := results[term]
		preds = append(preds, history.Prediction{
			Term:        term,
			Class:       r.Prediction,
			Probability: r.Probability,
		})
	}

	id, err := history.NewStore(db, logger.Logger).RecordRun(corpusPath, cfg.Forest.Seed, known, preds)
	if err != nil {
		return err
	}

	logger.Infow("Prediction run recorded", logger.FieldRunID, id)
	return nil
}
