package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/display"
)

var (
	importanceCorpus string
	importanceConfig string
	importanceFormat string
)

// ImportanceCmd represents the importance command
var ImportanceCmd = &cobra.Command{
	Use:   "importance",
	Short: "Show which terms drive each prediction",
	Long: `For every predictable term, list the features its model leaned on most,
sorted by descending importance.

Examples:
  clausal importance
  clausal importance --format json`,
	RunE: runImportanceCommand,
}

func init() {
	ImportanceCmd.Flags().StringVar(&importanceCorpus, "corpus", "", "Corpus TSV path (overrides config)")
	ImportanceCmd.Flags().StringVar(&importanceConfig, "config", "", "Config file path")
	ImportanceCmd.Flags().StringVarP(&importanceFormat, "format", "f", "table", "Output format (table/json)")
}

func runImportanceCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(importanceConfig)
	if err != nil {
		return err
	}

	p, _, err := fitPredictor(cfg, importanceCorpus)
	if err != nil {
		return err
	}

	results, err := p.FeatureImportance()
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(results)
	}

	data := pterm.TableData{{"Term", "Rank", "Feature", "Importance"}}
	for _, term := range sortedKeys(results) {
		for rank, w := range results[term] {
			name := ""
			if rank == 0 {
				name = term
			}
			data = append(data, []string{
				name,
				fmt.Sprintf("%d", rank+1),
				w.Feature,
				fmt.Sprintf("%.3f", w.Importance),
			})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
