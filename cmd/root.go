package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wortkiste",
	Short: "Build and drill a personal German vocabulary",
	Long: `wortkiste keeps a personal dictionary built from online lookups
and drills it in randomized recall sessions, carrying words you missed
today over into later sessions.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
