// Package cmd implements the natded command line interface: browsing
// and rendering the worked derivations shipped in the proofs catalog.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "natded",
	Short: "natded - browse natural-deduction derivations built from evidence combinators",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to the configuration file")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
