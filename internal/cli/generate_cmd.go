package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haytac/emojipack/internal/app"
)

// NewGenerateCmd creates the generate command, the main pipeline entry
// point. Flags are bound into viper so the usual precedence applies (flags
// over env over config file over defaults).
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch the emoji dataset and write the .alfredsnippets pack",
		Long: `Fetches the emoji dataset, derives trigger keywords for every emoji
(shortcodes, name words, categories), and writes the snippet pack archive.
Any existing file at the output path is overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("critical: configuration not loaded")
			}

			application := app.NewApplication(AppCfg)
			if err := application.Run(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("Pack generation failed")
				return err
			}

			cmd.Printf("Created %s\n", AppCfg.Output)
			cmd.Println("Import this file into Alfred via Preferences > Features > Snippets")
			return nil
		},
	}

	cmd.Flags().StringP("prefix", "p", ":", "prefix for snippet keywords")
	cmd.Flags().StringP("suffix", "s", ":", "suffix for snippet keywords")
	cmd.Flags().StringP("output", "o", "emoji-snippets.alfredsnippets", "output file path")
	cmd.Flags().IntP("limit", "m", 0, "maximum number of emoji records to process (0 = all)")
	cmd.Flags().Bool("allow-empty-affixes", false, "permit an empty prefix and suffix")
	cmd.Flags().Bool("keep-obsoleted", false, "keep records the dataset marks as obsoleted")

	_ = viper.BindPFlag("prefix", cmd.Flags().Lookup("prefix"))
	_ = viper.BindPFlag("suffix", cmd.Flags().Lookup("suffix"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("limit", cmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("allow_empty_affixes", cmd.Flags().Lookup("allow-empty-affixes"))
	_ = viper.BindPFlag("keep_obsoleted", cmd.Flags().Lookup("keep-obsoleted"))

	return cmd
}
