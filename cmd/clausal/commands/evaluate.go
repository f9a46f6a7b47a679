package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/config"
	"github.com/parchmint/clausal/display"
	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/logger"
)

var (
	evaluateFolds  int
	evaluateCorpus string
	evaluateConfig string
	evaluateFormat string
	evaluateWatch  bool
)

// EvaluateCmd represents the evaluate command
var EvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Cross-validate every term model against its baseline",
	Long: `Run k-fold cross-validation for every predictable term and compare the
mean fold accuracy against the majority-class baseline. Lift is accuracy
minus baseline: a model with no lift has learned nothing a frequency table
wouldn't know.

With --watch, evaluation re-runs whenever the config file changes, so you
can iterate on forest hyperparameters and see fresh numbers without
re-invoking the command.

Examples:
  clausal evaluate
  clausal evaluate --folds 3 --format json
  clausal evaluate --watch`,
	RunE: runEvaluateCommand,
}

func init() {
	EvaluateCmd.Flags().IntVarP(&evaluateFolds, "folds", "k", 0, "Cross-validation folds (overrides config)")
	EvaluateCmd.Flags().StringVar(&evaluateCorpus, "corpus", "", "Corpus TSV path (overrides config)")
	EvaluateCmd.Flags().StringVar(&evaluateConfig, "config", "", "Config file path")
	EvaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", "table", "Output format (table/json)")
	EvaluateCmd.Flags().BoolVarP(&evaluateWatch, "watch", "w", false, "Re-evaluate when the config file changes")
}

func runEvaluateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(evaluateConfig)
	if err != nil {
		return err
	}

	if err := evaluateOnce(cmd, cfg); err != nil {
		return err
	}

	if !evaluateWatch {
		return nil
	}
	return watchAndReevaluate(cmd)
}

// evaluateOnce fits a predictor with the given config, cross-validates every
// term, and renders the results.
func evaluateOnce(cmd *cobra.Command, cfg *config.Config) error {
	folds := cfg.Evaluation.Folds
	if evaluateFolds > 0 {
		folds = evaluateFolds
	}

	p, _, err := fitPredictor(cfg, evaluateCorpus)
	if err != nil {
		return err
	}

	results, err := p.Evaluate(folds)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(results)
	}

	fmt.Printf("Cross-validated %d term models (%d folds)\n\n", len(results), folds)

	data := pterm.TableData{{"Term", "Accuracy", "Std", "Baseline", "Lift"}}
	for _, term := range sortedKeys(results) {
		s := results[term]
		data = append(data, []string{
			term,
			fmt.Sprintf("%.3f", s.Accuracy),
			fmt.Sprintf("%.3f", s.Std),
			fmt.Sprintf("%.3f", s.Baseline),
			fmt.Sprintf("%+.3f", s.Lift),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// watchAndReevaluate re-runs evaluation each time the config file changes,
// until interrupted.
func watchAndReevaluate(cmd *cobra.Command) error {
	configPath := evaluateConfig
	if configPath == "" {
		configPath = config.GetViper().ConfigFileUsed()
	}
	if configPath == "" {
		return errors.WithHint(errors.New("no config file to watch"),
			"create a clausal.toml or pass --config")
	}

	watcher, err := config.NewConfigWatcher(configPath)
	if err != nil {
		return err
	}
	defer watcher.Close()

	watcher.OnReload(func(newCfg *config.Config) error {
		if err := newCfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid configuration")
		}
		return evaluateOnce(cmd, newCfg)
	})
	watcher.Start()

	logger.Infow("Watching config for changes", "path", configPath)
	pterm.Info.Printfln("Watching %s, Ctrl-C to stop", configPath)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}
