package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yurifrl/planu/pkg/config"
	"github.com/yurifrl/planu/pkg/plan"
)

var (
	cliFilters filters
	cfgFile    string
	dumpTable  bool
)

var rootCmd = &cobra.Command{
	Use:   "planu-cli",
	Short: "planu command-line interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path>",
	Short: "Convert demonstrativo statements to CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			Prefix:          "planu-cli",
			Level:           log.DebugLevel,
		})

		// Load configuration (config file + flag overrides)
		if _, err := config.Build(cfgFile, cmd.Flags()); err != nil {
			return err
		}

		inputPath := args[0]
		processor := NewFileProcessor(logger, &cliFilters)

		matches, err := filepath.Glob(inputPath)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", inputPath)
		}

		for _, match := range matches {
			fileInfo, err := os.Stat(match)
			if err != nil {
				logger.Warn("failed to stat file", "error", err, "file", match)
				continue
			}

			if fileInfo.IsDir() {
				if err := processor.ProcessDirectory(match); err != nil {
					logger.Warn("failed to process directory", "error", err, "dir", match)
				}
			} else {
				if err := processor.ProcessFile(match); err != nil {
					logger.Warn("failed to process file", "error", err, "file", match)
				}
			}
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Preview a YAML plan of statements (dry-run)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planPath := args[0]

		p, err := plan.Load(planPath)
		if err != nil {
			return err
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "planu-cli"})
		processor := NewFileProcessor(logger, &cliFilters)

		fmt.Printf("Plan preview for %s\n", planPath)
		p.Print()
		fmt.Println("Summary:")
		for _, st := range p.Statements {
			total, negativos, err := processor.Preview(st.File)
			if err != nil {
				return err
			}
			fmt.Printf("  - statement %s : %d records, %d negative\n", st.File, total, negativos)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start date (DD/MM/YYYY)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End date (DD/MM/YYYY)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.tipoPF, "tipo", "", "Filter by category (CONSULTA, EXAME, OUTROS)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.prestador, "prestador", "", "Filter by provider (case insensitive)")
	rootCmd.PersistentFlags().BoolVar(&cliFilters.negativos, "negativos", false, "Only records with novo_valor < 0")

	// Flags specific to the convert subcommand
	convertCmd.Flags().BoolVar(&dumpTable, "dump", false, "Pretty-print records instead of CSV output")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
