package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/display"
	"github.com/parchmint/clausal/history"
	"github.com/parchmint/clausal/logger"
)

var (
	historyLimit      int
	historyConfigPath string
	historyFormat     string
)

// HistoryCmd represents the history command
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded prediction runs",
	Long: `List prediction runs recorded in the local history database, newest
first.

Examples:
  clausal history
  clausal history --limit 5 --format json`,
	RunE: runHistoryCommand,
}

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list")
	HistoryCmd.Flags().StringVar(&historyConfigPath, "config", "", "Path to config file")
	HistoryCmd.Flags().StringVarP(&historyFormat, "format", "f", "table", "Output format (table/json)")
}

func runHistoryCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(historyConfigPath)
	if err != nil {
		return err
	}

	db, err := history.Open(cfg.History.Path, logger.Logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := history.Migrate(db, logger.Logger); err != nil {
		return err
	}

	store := history.NewStore(db, logger.Logger)
	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		return err
	}

	logger.Debugw("Listed prediction runs", "count", len(runs))

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(runs)
	}

	if len(runs) == 0 {
		pterm.Info.Println("No prediction runs recorded yet")
		return nil
	}

	tableData := pterm.TableData{{"Run ID", "Created", "Corpus", "Seed", "Known Terms"}}
	for _, run := range runs {
		tableData = append(tableData, []string{
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.CorpusPath,
			pterm.Sprintf("%d", run.Seed),
			formatKnown(run.Known),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func formatKnown(known map[string]int) string {
	if len(known) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(known))
	for _, term := range sortedKeys(known) {
		parts = append(parts, pterm.Sprintf("%s=%d", term, known[term]))
	}
	return strings.Join(parts, ", ")
}
