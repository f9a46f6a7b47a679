package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/display"
	"github.com/parchmint/clausal/logger"
	"github.com/parchmint/clausal/offer"
)

var (
	offerScore      float64
	offerRatio      float64
	offerEquity     float64
	offerConfigPath string
	offerFormat     string
)

// OfferCmd represents the offer command
var OfferCmd = &cobra.Command{
	Use:   "offer",
	Short: "Solve cliff and vesting terms for an equity offer",
	Long: `Solve the cliff and vesting durations that balance an equity offer
against the average score and cliff/vesting ratio observed in prior deals.

Examples:
  clausal offer --score 120 --ratio 0.4
  clausal offer --score 120 --ratio 0.4 --equity 0.25 --format json`,
	RunE: runOfferCommand,
}

func init() {
	OfferCmd.Flags().Float64Var(&offerScore, "score", 0, "Average deal score (required)")
	OfferCmd.Flags().Float64Var(&offerRatio, "ratio", 0, "Average cliff/vesting ratio (required)")
	OfferCmd.Flags().Float64Var(&offerEquity, "equity", 0, "Equity fraction on offer (defaults to config)")
	OfferCmd.Flags().StringVar(&offerConfigPath, "config", "", "Path to config file")
	OfferCmd.Flags().StringVarP(&offerFormat, "format", "f", "table", "Output format (table/json)")
	OfferCmd.MarkFlagRequired("score")
	OfferCmd.MarkFlagRequired("ratio")
}

func runOfferCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(offerConfigPath)
	if err != nil {
		return err
	}

	equity := cfg.Offer.Equity
	if cmd.Flags().Changed("equity") {
		equity = offerEquity
	}

	result, err := offer.Solve(offer.Inputs{
		AvgScore: offerScore,
		AvgRatio: offerRatio,
		Equity:   equity,
	})
	if err != nil {
		return err
	}

	logger.Debugw("Offer solved",
		"equity", equity,
		"cliff_days", result.CliffDays,
		"vesting_days", result.VestingDays,
	)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(map[string]float64{
			"cliff_years":   result.CliffYears(),
			"vesting_years": result.VestingYears(),
		})
	}

	tableData := pterm.TableData{
		{"Term", "Years"},
		{"Cliff", pterm.Sprintf("%.2f", result.CliffYears())},
		{"Vesting", pterm.Sprintf("%.2f", result.VestingYears())},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
