package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nauticalventures/marina"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marina <BoatData.csv>",
	Short: "Boat inventory and billing ledger for a marina",
	Long: `Tracks boats, where each is kept and what each owes, and applies
monthly location-based fees. Data is read from a CSV file at startup and
written back upon exit.

Example:
  marina BoatData.csv`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *marina.Config
		if configFile != "" {
			c, err := marina.ConfigFromFile(configFile)
			if err != nil {
				return err
			}
			cfg = c
		}

		ledger, closer, err := marina.Open(args[0], cfg)
		if err != nil {
			return err
		}

		return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), ledger, closer)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "JSON config file with capacity and monthly rates")
}
