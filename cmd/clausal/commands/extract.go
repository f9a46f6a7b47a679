package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/display"
	"github.com/parchmint/clausal/htmltext"
)

var extractFormat string

// ExtractCmd represents the extract command
var ExtractCmd = &cobra.Command{
	Use:   "extract HTML_FILE",
	Short: "Extract clean text and clause signals from an HTML contract",
	Long: `Parse an HTML contract exhibit, extract its visible text, and run the
support-contract and auto-renewal detectors over it.

The default output is one tab-separated line, support<TAB>auto_renewal, with
yes/no values ready for the binary encoder.

Examples:
  clausal extract contract.html
  clausal extract contract.html --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractCommand,
}

func init() {
	ExtractCmd.Flags().StringVarP(&extractFormat, "format", "f", "tsv", "Output format (tsv/json)")
}

func runExtractCommand(cmd *cobra.Command, args []string) error {
	text, err := htmltext.ExtractFile(args[0])
	if err != nil {
		return err
	}

	support := htmltext.DetectSupportContract(text)
	autoRenew := htmltext.DetectAutoRenew(text)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(map[string]string{
			"support_contract": support,
			"auto_renewal":     autoRenew,
		})
	}

	fmt.Printf("%s\t%s\n", support, autoRenew)
	return nil
}
