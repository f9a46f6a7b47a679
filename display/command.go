package display

import (
	"github.com/spf13/cobra"
)

// ShouldOutputJSON determines if a command should emit JSON instead of a
// rendered table, based on its --format flag or the global --json flag.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if cmd.Flags().Changed("format") {
		if format, _ := cmd.Flags().GetString("format"); format == "json" {
			return true
		}
		return false
	}

	globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
	return globalFlag
}
