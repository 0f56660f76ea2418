package main

import (
	"github.com/spf13/cobra"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
	"infstat/internal/inference"
	"infstat/internal/report"
)

func newIntervalCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Confidence intervals for a mean or a proportion",
	}
	cmd.AddCommand(newMeanIntervalCmd(s), newProportionIntervalCmd(s))
	return cmd
}

func newMeanIntervalCmd(s *session) *cobra.Command {
	var (
		mean, sd      float64
		n             int
		knownVariance bool
	)

	cmd := &cobra.Command{
		Use:   "mean",
		Short: "Interval for a population mean",
		Long: `Interval for a population mean.

With --known-variance, --sd is the population standard deviation and the
normal quantile is used; otherwise --sd is the sample standard deviation and
Student's t with n-1 degrees of freedom is used.

Example: infstat interval mean --mean 50 --sd 8 --n 25 --confidence 0.95`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ci  domain.ConfidenceInterval
				err error
			)
			if knownVariance {
				ci, err = s.engine.MeanIntervalKnownVariance(mean, sd, n, s.confidence)
			} else {
				ci, err = s.engine.MeanIntervalUnknownVariance(mean, sd, n, s.confidence)
			}
			if err != nil {
				return err
			}
			return s.render(cmd, report.Interval("Mean interval", ci, n, s.confidence))
		},
	}

	cmd.Flags().Float64Var(&mean, "mean", 0, "Sample mean")
	cmd.Flags().Float64Var(&sd, "sd", 0, "Standard deviation")
	cmd.Flags().IntVar(&n, "n", 0, "Sample size")
	cmd.Flags().BoolVar(&knownVariance, "known-variance", false, "Treat --sd as the known population standard deviation")
	_ = cmd.MarkFlagRequired("mean")
	_ = cmd.MarkFlagRequired("sd")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newProportionIntervalCmd(s *session) *cobra.Command {
	var (
		phat         float64
		successes, n int
	)

	cmd := &cobra.Command{
		Use:   "proportion",
		Short: "Interval for a population proportion",
		Long: `Interval for a population proportion, from --phat or from --successes out of --n.

Example: infstat interval proportion --successes 280 --n 400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ci  domain.ConfidenceInterval
				err error
			)
			switch {
			case cmd.Flags().Changed("successes"):
				ci, err = s.engine.ProportionIntervalFromCounts(successes, n, s.confidence)
			case cmd.Flags().Changed("phat"):
				ci, err = s.engine.ProportionInterval(phat, n, s.confidence)
			default:
				return errors.InvalidInput("one of --phat or --successes is required")
			}
			if err != nil {
				return err
			}
			return s.render(cmd, report.Interval("Proportion interval", ci, n, s.confidence))
		},
	}

	cmd.Flags().Float64Var(&phat, "phat", 0, "Sample proportion")
	cmd.Flags().IntVar(&successes, "successes", 0, "Number of successes")
	cmd.Flags().IntVar(&n, "n", 0, "Sample size")
	cmd.MarkFlagsMutuallyExclusive("phat", "successes")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newSampleSizeCmd(s *session) *cobra.Command {
	var (
		p, margin  float64
		population int
	)

	cmd := &cobra.Command{
		Use:   "samplesize",
		Short: "Sample size needed to estimate a proportion",
		Long: `Sample size needed to estimate a proportion within --margin at the
configured confidence. With --population the finite population correction is
applied and the result never exceeds the population.

Example: infstat samplesize --margin 0.03 --p 0.5 --population 10000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				required int
				err      error
			)
			if cmd.Flags().Changed("population") {
				required, err = s.engine.RequiredSampleSizeFinitePopulation(population, p, margin, s.confidence)
			} else {
				population = 0
				required, err = s.engine.RequiredSampleSizeForProportion(p, margin, s.confidence)
			}
			if err != nil {
				return err
			}
			return s.render(cmd, report.SampleSize(required, population, p, margin, s.confidence))
		},
	}

	cmd.Flags().Float64Var(&p, "p", 0.5, "Anticipated proportion (0.5 is the most conservative)")
	cmd.Flags().Float64Var(&margin, "margin", 0, "Margin of error")
	cmd.Flags().IntVar(&population, "population", 0, "Population size for the finite population correction")
	_ = cmd.MarkFlagRequired("margin")
	return cmd
}

func newStdErrCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stderr",
		Short: "Standard error of a mean or a proportion",
	}

	var (
		sd, phat   float64
		nMean, nPr int
	)
	meanCmd := &cobra.Command{
		Use:   "mean",
		Short: "Standard error s/sqrt(n)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			se, err := inference.StandardErrorMean(sd, nMean)
			if err != nil {
				return err
			}
			return s.render(cmd, report.Quantity("Standard error of the mean", "se", se))
		},
	}
	meanCmd.Flags().Float64Var(&sd, "sd", 0, "Standard deviation")
	meanCmd.Flags().IntVar(&nMean, "n", 0, "Sample size")
	_ = meanCmd.MarkFlagRequired("sd")
	_ = meanCmd.MarkFlagRequired("n")

	proportionCmd := &cobra.Command{
		Use:   "proportion",
		Short: "Standard error sqrt(p(1-p)/n)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			se, err := inference.StandardErrorProportion(phat, nPr)
			if err != nil {
				return err
			}
			return s.render(cmd, report.Quantity("Standard error of the proportion", "se", se))
		},
	}
	proportionCmd.Flags().Float64Var(&phat, "phat", 0, "Sample proportion")
	proportionCmd.Flags().IntVar(&nPr, "n", 0, "Sample size")
	_ = proportionCmd.MarkFlagRequired("phat")
	_ = proportionCmd.MarkFlagRequired("n")

	cmd.AddCommand(meanCmd, proportionCmd)
	return cmd
}

func newTStatCmd(s *session) *cobra.Command {
	var (
		mean, mu, sd float64
		n            int
	)

	cmd := &cobra.Command{
		Use:   "tstat",
		Short: "t statistic (xbar-mu)/(s/sqrt(n))",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := inference.TStatistic(mean, mu, sd, n)
			if err != nil {
				return err
			}
			return s.render(cmd, report.Quantity("t statistic", "t", t))
		},
	}

	cmd.Flags().Float64Var(&mean, "mean", 0, "Sample mean")
	cmd.Flags().Float64Var(&mu, "mu", 0, "Hypothesized mean")
	cmd.Flags().Float64Var(&sd, "sd", 0, "Sample standard deviation")
	cmd.Flags().IntVar(&n, "n", 0, "Sample size")
	_ = cmd.MarkFlagRequired("mean")
	_ = cmd.MarkFlagRequired("sd")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}
