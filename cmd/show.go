package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/natded/formatter"
	"github.com/gnolang/natded/proofs"
)

var outPath string

var showCmd = &cobra.Command{
	Use:   "show [names...]",
	Short: "Render the proof listing of one or more derivations",
	Long: `Renders the Fitch-style listing of catalog derivations and executes
each one over the placeholder propositions, reporting the type of the
derived evidence. Run 'natded list' for the available names.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide derivation names (see 'natded list')")
			os.Exit(1)
		}

		cfg, err := loadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if outPath != "" {
			cfg.Output = outPath
		}

		if err := runShow(os.Stdout, args, cfg); err != nil {
			logger.Fatal("Failed to render derivation", zap.Error(err))
		}
	},
}

func init() {
	showCmd.Flags().StringVarP(&outPath, "output", "o", "", "write the listings to a file instead of stdout")
}

func runShow(stdout io.Writer, names []string, cfg Config) error {
	out := stdout
	colorize := cfg.Color
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
		colorize = false
	}

	ftr := formatter.New().WithColor(colorize)
	for _, name := range names {
		e, ok := proofs.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown derivation %q", name)
		}
		if err := e.Derivation.Check(); err != nil {
			return err
		}
		fmt.Fprintln(out, ftr.Render(e.Derivation))
		fmt.Fprintf(out, "evidence: %s\n", e.Run())
	}
	return nil
}
