package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"infstat/adapters/distributions"
	"infstat/internal"
	"infstat/internal/config"
	"infstat/internal/inference"
	"infstat/internal/report"
)

func main() {
	// .env is optional; environment variables already set take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		internal.NewDefaultLogger().Named("infstat").Warn("could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session carries the resolved global flags into every command
type session struct {
	cfg        *config.Config
	format     string
	backend    string
	confidence float64
	alpha      float64

	engine *inference.Engine
	out    report.Format
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	s := &session{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "infstat",
		Short: "Confidence intervals, sample sizes and hypothesis tests from summary statistics",
		Long: `infstat computes interval estimates, required sample sizes and z/t hypothesis
tests from summary statistics, and describes raw samples from CSV or XLSX files.

Defaults are read from the environment (or a .env file):
- INFSTAT_CONFIDENCE (default: 0.95)
- INFSTAT_ALPHA (default: 0.05)
- INFSTAT_BACKEND gonum|moremath (default: gonum)
- INFSTAT_DIVISOR sample|population (default: sample)
- INFSTAT_FORMAT text|markdown|html (default: text)
- INFSTAT_SHEET (default: Sheet1)
- INFSTAT_WORKERS (default: 4)
- INFSTAT_LOG_LEVEL ERROR|WARN|INFO|DEBUG (default: WARN)

INFSTAT_CONFIG may name a TOML file with [defaults], [data] and [output]
sections; individual variables override it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.format, "format", cfg.Output.Format, "Output format: text|markdown|html")
	flags.StringVar(&s.backend, "backend", cfg.Defaults.Backend, "Distribution backend: gonum|moremath")
	flags.Float64Var(&s.confidence, "confidence", cfg.Defaults.Confidence, "Confidence level in (0, 1)")
	flags.Float64Var(&s.alpha, "alpha", cfg.Defaults.Alpha, "Significance level in (0, 1)")

	rootCmd.AddCommand(
		newIntervalCmd(s),
		newSampleSizeCmd(s),
		newTestCmd(s),
		newDescribeCmd(s),
		newZScoreCmd(s),
		newQuantileCmd(s),
		newCriticalCmd(s),
		newStdErrCmd(s),
		newTStatCmd(s),
		newRegionCmd(s),
	)
	return rootCmd
}

func (s *session) init() error {
	dist, err := distributions.ByName(s.backend)
	if err != nil {
		return err
	}
	s.engine = inference.New(dist)

	s.out, err = report.ParseFormat(s.format)
	return err
}

func (s *session) render(cmd *cobra.Command, r *report.Report) error {
	return report.Render(cmd.OutOrStdout(), r, s.out)
}

const tailUsage = "Alternative hypothesis: two-sided|lower|upper"
