package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karimElmougi/firesim/internal/calculation"
	"github.com/karimElmougi/firesim/internal/config"
	"github.com/karimElmougi/firesim/internal/output"
)

var (
	flagYears      int
	flagBaseYear   int
	flagConfigFile string
	flagFormat     string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "firesim",
	Short: "Personal finance projection engine",
	Long: "Projects multi-year personal finances: income, taxes, registered and\n" +
		"unregistered savings, and a retirement-readiness target, one fiscal\n" +
		"year at a time.",
	SilenceUsage: true,
	RunE:         runProjection,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagYears, "number-of-years", "n", 20, "Number of years to project")
	rootCmd.PersistentFlags().IntVarP(&flagBaseYear, "base-year", "b", 0, "Offset added to the displayed year index")
	rootCmd.PersistentFlags().StringVarP(&flagConfigFile, "config-file", "c", "config.toml", "Configuration file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "csv", "Output format (csv|console)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(sweepCmd)
}

func runProjection(cmd *cobra.Command, args []string) error {
	sim, err := loadSimulation()
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q", flagFormat)
	}
	if flagYears < 1 {
		return fmt.Errorf("number of years must be at least 1")
	}

	report := output.BuildReport(sim, flagYears, flagBaseYear)
	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func loadSimulation() (*calculation.Simulation, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(flagConfigFile)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config file %q: %w", flagConfigFile, err)
	}

	sim, err := calculation.NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	sim.SetLogger(newLogger())
	return sim, nil
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a starter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Print(config.ExampleTOML)
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
