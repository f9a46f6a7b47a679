package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parchmint/clausal/display"
	"github.com/parchmint/clausal/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(info)
		}
		fmt.Println(info.String())
		return nil
	},
}
