package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/natded/proofs"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the derivations in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range proofs.Catalog() {
			fmt.Printf("%-24s %s\n", e.Name, e.Sequent())
		}
	},
}
