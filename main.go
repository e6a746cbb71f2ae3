//go:build !lambda

package main

import (
	"fmt"
	"os"

	"github.com/ahhahh555/gel-calculator/solver"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logPretty  bool
	jsonOut    bool

	solveStocks []float64
	solveTarget float64
	solveVolume float64
)

var (
	rootCmd = &cobra.Command{
		Use:   "gelcalc",
		Short: "Dilution calculator for Western Blot gel stocks",
		Long: `gelcalc finds stock gel and buffer volumes that dilute premixed
polyacrylamide stocks to a target concentration. Stock labels are half the
true concentration; the calculator doubles them internally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Rank recipes for one target concentration and volume",
		Example: `  gelcalc solve --stock 6 --stock 10 --target 8 --volume 10
  gelcalc solve -s 4.5,8,12.5 -t 7.5 -v 10 --json`,
		Args: cobra.NoArgs,
		RunE: runSolveCommand,
	}
	batchCmd = &cobra.Command{
		Use:   "batch <requests.json> [name]",
		Short: "Run every request in a JSON file, or only the named one",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runBatchCommand,
	}
	stocksCmd = &cobra.Command{
		Use:   "stocks",
		Short: "List the standard stock concentrations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), FormatStocks())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with solver tuning")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "pretty", false, "Human-readable logs on stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output results as JSON")

	solveCmd.Flags().Float64SliceVarP(&solveStocks, "stock", "s", nil, "Selected stock concentration (repeatable)")
	solveCmd.Flags().Float64VarP(&solveTarget, "target", "t", 0, "Target concentration (%)")
	solveCmd.Flags().Float64VarP(&solveVolume, "volume", "v", 0, "Total volume (ml)")
	_ = solveCmd.MarkFlagRequired("stock")
	_ = solveCmd.MarkFlagRequired("target")
	_ = solveCmd.MarkFlagRequired("volume")

	rootCmd.AddCommand(solveCmd, batchCmd, stocksCmd)
}

// setup loads configuration and builds the logger and solver. Flags win
// over file and environment.
func setup(cmd *cobra.Command) (*solver.Solver, zerolog.Logger, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Log.Pretty = logPretty
	}
	log := NewLogger(cfg.Log, cmd.ErrOrStderr())
	return solver.New(cfg.Solver, log), log, nil
}

func runSolveCommand(cmd *cobra.Command, _ []string) error {
	s, log, err := setup(cmd)
	if err != nil {
		return err
	}
	req := solver.Request{
		Stocks:              solveStocks,
		TargetConcentration: solveTarget,
		TotalVolume:         solveVolume,
	}
	// reject bad input before any search
	if err := req.Validate(); err != nil {
		return err
	}
	r, err := runRequest(s, log, "", req)
	if err != nil {
		return err
	}
	return writeReports(cmd.OutOrStdout(), []Report{r}, false, jsonOut)
}

func runBatchCommand(cmd *cobra.Command, args []string) error {
	s, log, err := setup(cmd)
	if err != nil {
		return err
	}
	reqs, err := LoadRequests(args[0])
	if err != nil {
		return err
	}
	if len(args) == 2 {
		nr := FindRequest(reqs, args[1])
		if nr == nil {
			return fmt.Errorf("request %q not found", args[1])
		}
		reqs = []NamedRequest{*nr}
	}
	log.Info().Int("requests", len(reqs)).Str("file", args[0]).Msg("loaded batch")

	reports, err := runAll(s, log, reqs)
	if err != nil {
		return err
	}
	return writeReports(cmd.OutOrStdout(), reports, len(reports) > 1, jsonOut)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
