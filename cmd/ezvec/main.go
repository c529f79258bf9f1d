// Command ezvec runs matrix operations on YAML matrix documents.
//
//	ezvec rref system.yaml
//	ezvec --output yaml inverse a.yaml
//	ezvec mul a.yaml b.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ezvec/internal/config"
	"github.com/katalvlaran/ezvec/internal/logging"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	output     string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "ezvec",
		Short: "ezvec - dense matrix tool",
		Long: `ezvec reads matrices from YAML documents of the form

  rows: [[1, 2, 3], [4, 5, 6]]

and prints the result of a matrix operation. Short rows are zero-padded.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format: text or yaml (overrides config)")

	rootCmd.AddCommand(
		a.unaryCmd("rref FILE", "Reduced row echelon form", a.rref),
		a.unaryCmd("rank FILE", "Rank (non-zero rows of the RREF)", a.rank),
		a.inverseCmd(),
		a.unaryCmd("transpose FILE", "Transpose", a.transpose),
		a.binaryCmd("add A B", "Element-wise sum A + B", a.add),
		a.binaryCmd("sub A B", "Element-wise difference A - B", a.sub),
		a.binaryCmd("mul A B", "Matrix product A × B", a.mul),
		a.binaryCmd("augment A B", "Horizontal concatenation [A | B]", a.augment),
	)

	return rootCmd
}

// setup loads the config and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output.Format = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("Configuration loaded",
		zap.String("path", a.configPath),
		zap.String("format", cfg.Output.Format),
		zap.Bool("validate_nan_inf", cfg.Numeric.ValidateNaNInf),
		zap.Bool("singular_check", cfg.Numeric.SingularCheck))

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
