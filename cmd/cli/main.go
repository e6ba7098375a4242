package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rhyrak/combo-schedule/internal/catalog"
	"github.com/rhyrak/combo-schedule/internal/config"
	"github.com/rhyrak/combo-schedule/internal/csvio"
	"github.com/rhyrak/combo-schedule/internal/logger"
	"github.com/rhyrak/combo-schedule/internal/scheduler"
	"github.com/rhyrak/combo-schedule/pkg/model"
)

var (
	configFile  string
	catalogFile string
	exportFile  string
	format      string
	top         int
	verify      bool
	color       bool

	minCredits int
	maxCredits int
	credits    int
	maxGap     int
	maxPerDay  int
	maxDays    int
	mandatory  []string
	rankMode   string
	csvDelim   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "combo-schedule",
		Short:        "Find course and section combinations that fit a weekly schedule",
		SilenceUsage: true,
		RunE:         runSchedule,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.StringVar(&catalogFile, "catalog", "", "course catalog (yaml, json, toml or csv)")
	flags.StringVar(&csvDelim, "delimiter", ";", "csv catalog delimiter")
	flags.IntVar(&minCredits, "min-credits", 0, "minimum total credits")
	flags.IntVar(&maxCredits, "max-credits", 0, "maximum total credits")
	flags.IntVar(&credits, "credits", 0, "exact total credits (sets min and max)")
	flags.IntVar(&maxGap, "max-gap", 0, "maximum idle minutes per week")
	flags.IntVar(&maxPerDay, "max-per-day", 0, "maximum classes per day")
	flags.IntVar(&maxDays, "max-days", 0, "maximum days per week")
	flags.StringSliceVar(&mandatory, "mandatory", nil, "courses every schedule must contain")
	flags.StringVar(&rankMode, "rank", "", "ranking: gap, days or days-gap")

	rootCmd.Flags().IntVar(&top, "top", 0, "number of schedules to show (0 shows all)")
	rootCmd.Flags().StringVar(&format, "format", "text", "output format: text, csv or json")
	rootCmd.Flags().StringVar(&exportFile, "export", "", "also write the schedules to this csv file")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "re-check every schedule and print the report")
	rootCmd.Flags().BoolVar(&color, "color", false, "style headings (only when stdout is a terminal)")

	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and constraints without enumerating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, courses, log, err := prepare(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := scheduler.New(log).Check(courses, cfg.Constraints); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d courses, constraints ok\n", len(courses))
			return nil
		},
	}
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	cfg, courses, log, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cmd.Flags().Changed("top") {
		cfg.Top = top
	}
	if cmd.Flags().Changed("export") {
		cfg.ExportFile = exportFile
	}

	engine := scheduler.New(log)
	outcome, err := engine.Run(courses, cfg.Constraints, cfg.Top)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		styled := color && term.IsTerminal(int(os.Stdout.Fd()))
		if err := csvio.PrintResults(out, outcome, csvio.PrintOptions{Styled: styled}); err != nil {
			return err
		}
	case "csv":
		if outcome.Empty() {
			fmt.Fprintln(out, csvio.NoResults)
			break
		}
		s, err := csvio.ExportResultsString(outcome)
		if err != nil {
			return fmt.Errorf("render csv: %w", err)
		}
		fmt.Fprint(out, s)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcome); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if verify {
		// csv and json stdout must stay parseable
		report := out
		if format != "text" {
			report = cmd.ErrOrStderr()
		}
		for i, r := range outcome.Results {
			valid, msg := scheduler.Validate(r, courses, cfg.Constraints)
			fmt.Fprintf(report, "Schedule %d valid: %t\n%s", i+1, valid, msg)
		}
	}

	if cfg.ExportFile != "" {
		if err := csvio.ExportResults(outcome, cfg.ExportFile); err != nil {
			return err
		}
		log.Info("exported schedules", zap.String("path", cfg.ExportFile), zap.Int("count", len(outcome.Results)))
	}
	return nil
}

// prepare loads the config, applies the flags the user set and reads the
// catalog.
func prepare(cmd *cobra.Command) (*config.Config, []model.Course, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	courses, err := catalog.Load(cfg.CatalogFile, cfg.CSVDelimiter)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	log.Debug("catalog loaded", zap.String("path", cfg.CatalogFile), zap.Int("courses", len(courses)))
	return cfg, courses, log, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogFile = catalogFile
	}
	if flags.Changed("delimiter") {
		delim := []rune(csvDelim)
		if len(delim) != 1 {
			return fmt.Errorf("--delimiter must be a single character")
		}
		cfg.CSVDelimiter = delim[0]
	}
	c := &cfg.Constraints
	if flags.Changed("min-credits") {
		c.MinCredits = minCredits
	}
	if flags.Changed("max-credits") {
		c.MaxCredits = maxCredits
	}
	if flags.Changed("credits") {
		c.MinCredits = credits
		c.MaxCredits = credits
	}
	if flags.Changed("max-gap") {
		c.MaxGapMinutes = maxGap
	}
	if flags.Changed("max-per-day") {
		c.MaxClassesPerDay = maxPerDay
	}
	if flags.Changed("max-days") {
		c.MaxDaysPerWeek = maxDays
	}
	if flags.Changed("mandatory") {
		c.Mandatory = mandatory
	}
	if flags.Changed("rank") {
		c.Rank = model.RankMode(rankMode)
	}
	return nil
}
