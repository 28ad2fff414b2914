package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/emojipack/internal/config"
	"github.com/haytac/emojipack/internal/logging"
)

var (
	cfgFile string
	AppCfg  *config.AppConfig // populated in PersistentPreRunE
)

var RootCmd = &cobra.Command{
	Use:   "emojipack",
	Short: "Generate Alfred snippet packs from the iamcal/emoji-data dataset.",
	Long: `emojipack fetches the public iamcal/emoji-data emoji database and packages
it as an importable .alfredsnippets file, with one snippet per derived
trigger keyword. Import the result via Alfred Preferences > Features >
Snippets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loadedCfg

		logging.Setup(AppCfg.Log)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.emojipack/config.yaml)")

	RootCmd.AddCommand(NewGenerateCmd())
	RootCmd.AddCommand(NewAnalyzeCmd())
}
