package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/cmd/clausal/commands"
	"github.com/parchmint/clausal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "clausal",
	Short: "Clausal - contract term prediction toolkit",
	Long: `Clausal - predict unknown contract terms from known ones.

Clausal learns statistical patterns from a reference corpus of annotated
contracts and predicts the likely values of clauses you haven't negotiated
yet, with cross-validated reliability numbers and per-term feature
attribution.

Available commands:
  predict     - Predict unknown terms from known ones
  evaluate    - Cross-validate every term model against its baseline
  importance  - Show which terms drive each prediction
  extract     - Extract clean text and clause signals from an HTML contract
  offer       - Solve the equity-offer cliff/vesting equations
  history     - List recorded prediction runs
  version     - Show build information

Examples:
  clausal predict --term "Audit Rights=1" --term "Anti-Assignment=0"
  clausal evaluate --folds 5
  clausal importance
  clausal extract contract.html`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOut, _ := cmd.Flags().GetBool("json")
		if err := logger.InitializeWithVerbosity(jsonOut, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit JSON instead of rendered tables")

	rootCmd.AddCommand(commands.PredictCmd)
	rootCmd.AddCommand(commands.EvaluateCmd)
	rootCmd.AddCommand(commands.ImportanceCmd)
	rootCmd.AddCommand(commands.ExtractCmd)
	rootCmd.AddCommand(commands.OfferCmd)
	rootCmd.AddCommand(commands.HistoryCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
