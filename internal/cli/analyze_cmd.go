package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haytac/emojipack/internal/app"
	"github.com/haytac/emojipack/internal/emoji"
)

// NewAnalyzeCmd creates the analyze command, a schema census over the raw
// dataset.
func NewAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Report which keys the emoji dataset carries and how often",
		Long: `Fetches the raw emoji dataset and prints a census of its key space:
keys present on every entry versus optional ones, with the value types
observed for each. Handy for checking upstream schema drift.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("critical: configuration not loaded")
			}

			source := emoji.NewHTTPSource(AppCfg.SourceURL)
			return app.AnalyzeKeys(cmd.Context(), source, cmd.OutOrStdout())
		},
	}
}
