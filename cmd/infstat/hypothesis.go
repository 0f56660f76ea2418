package main

import (
	"github.com/spf13/cobra"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
	"infstat/internal/inference"
	"infstat/internal/report"
)

func newTestCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Hypothesis tests for means and proportions",
		Long: `Hypothesis tests for means and proportions. Each test reports its statistic
and p-value; H0 is rejected when p < --alpha.`,
	}
	cmd.AddCommand(
		newMeanTestCmd(s),
		newProportionTestCmd(s),
		newTwoMeansCmd(s),
		newTwoProportionsCmd(s),
	)
	return cmd
}

func newMeanTestCmd(s *session) *cobra.Command {
	var (
		mean, mu0, sd float64
		n             int
		tail          string
		knownVariance bool
	)

	cmd := &cobra.Command{
		Use:   "mean",
		Short: "Test H0: mu = mu0",
		Long: `Test H0: mu = mu0. Uses z with --known-variance, otherwise t with n-1
degrees of freedom.

Example: infstat test mean --mean 1700 --mu0 1600 --sd 120 --n 100 --tail upper --known-variance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTailMode(tail)
			if err != nil {
				return err
			}
			out, err := s.engine.MeanTest(mean, mu0, sd, n, t, knownVariance)
			if err != nil {
				return err
			}
			return s.render(cmd, report.Hypothesis("Mean test", out, n, s.alpha))
		},
	}

	cmd.Flags().Float64Var(&mean, "mean", 0, "Sample mean")
	cmd.Flags().Float64Var(&mu0, "mu0", 0, "Hypothesized mean")
	cmd.Flags().Float64Var(&sd, "sd", 0, "Standard deviation")
	cmd.Flags().IntVar(&n, "n", 0, "Sample size")
	cmd.Flags().StringVar(&tail, "tail", "two-sided", tailUsage)
	cmd.Flags().BoolVar(&knownVariance, "known-variance", false, "Treat --sd as the known population standard deviation")
	_ = cmd.MarkFlagRequired("mean")
	_ = cmd.MarkFlagRequired("mu0")
	_ = cmd.MarkFlagRequired("sd")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newProportionTestCmd(s *session) *cobra.Command {
	var (
		phat, p0     float64
		successes, n int
		tail         string
	)

	cmd := &cobra.Command{
		Use:   "proportion",
		Short: "Test H0: p = p0",
		Long: `Test H0: p = p0 with the normal approximation. A warning is added when
n*p0 or n*(1-p0) is below 5.

Example: infstat test proportion --successes 75 --n 200 --p0 0.30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTailMode(tail)
			if err != nil {
				return err
			}

			var out domain.HypothesisOutcome
			switch {
			case cmd.Flags().Changed("successes"):
				out, err = s.engine.ProportionTestFromCounts(successes, n, p0, t)
			case cmd.Flags().Changed("phat"):
				out, err = s.engine.ProportionTest(phat, p0, n, t)
			default:
				return errors.InvalidInput("one of --phat or --successes is required")
			}
			if err != nil {
				return err
			}

			r := report.Hypothesis("Proportion test", out, n, s.alpha)
			approx, err := inference.CheckNormalApproximation(p0, n)
			if err != nil {
				return err
			}
			report.NormalApproximationNote(r, approx)
			return s.render(cmd, r)
		},
	}

	cmd.Flags().Float64Var(&phat, "phat", 0, "Sample proportion")
	cmd.Flags().IntVar(&successes, "successes", 0, "Number of successes")
	cmd.Flags().IntVar(&n, "n", 0, "Sample size")
	cmd.Flags().Float64Var(&p0, "p0", 0, "Hypothesized proportion")
	cmd.Flags().StringVar(&tail, "tail", "two-sided", tailUsage)
	cmd.MarkFlagsMutuallyExclusive("phat", "successes")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("p0")
	return cmd
}

func newTwoMeansCmd(s *session) *cobra.Command {
	var (
		mean1, var1, mean2, var2 float64
		n1, n2                   int
		tail                     string
	)

	cmd := &cobra.Command{
		Use:   "two-means",
		Short: "Compare two population means",
		Long: `Compare two population means from independent samples: an interval for
mean1-mean2 and a z-test of the difference.

Example: infstat test two-means --mean1 8.2 --var1 1.5 --n1 40 --mean2 7.6 --var2 1.8 --n2 45`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTailMode(tail)
			if err != nil {
				return err
			}
			out, err := s.engine.TwoMeanTest(mean1, mean2, var1, n1, var2, n2, t, s.confidence)
			if err != nil {
				return err
			}
			return s.render(cmd, report.TwoSample("Two means", out, s.confidence, s.alpha))
		},
	}

	cmd.Flags().Float64Var(&mean1, "mean1", 0, "Mean of sample 1")
	cmd.Flags().Float64Var(&var1, "var1", 0, "Variance of sample 1")
	cmd.Flags().IntVar(&n1, "n1", 0, "Size of sample 1")
	cmd.Flags().Float64Var(&mean2, "mean2", 0, "Mean of sample 2")
	cmd.Flags().Float64Var(&var2, "var2", 0, "Variance of sample 2")
	cmd.Flags().IntVar(&n2, "n2", 0, "Size of sample 2")
	cmd.Flags().StringVar(&tail, "tail", "two-sided", tailUsage)
	for _, name := range []string{"mean1", "var1", "n1", "mean2", "var2", "n2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newTwoProportionsCmd(s *session) *cobra.Command {
	var (
		p1, p2 float64
		n1, n2 int
		tail   string
	)

	cmd := &cobra.Command{
		Use:   "two-proportions",
		Short: "Compare two population proportions",
		Long: `Compare two population proportions from independent samples: an interval
for p1-p2 and a z-test of the difference.

Example: infstat test two-proportions --p1 0.42 --n1 500 --p2 0.36 --n2 450`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTailMode(tail)
			if err != nil {
				return err
			}
			out, err := s.engine.TwoProportionTest(p1, n1, p2, n2, t, s.confidence)
			if err != nil {
				return err
			}
			return s.render(cmd, report.TwoSample("Two proportions", out, s.confidence, s.alpha))
		},
	}

	cmd.Flags().Float64Var(&p1, "p1", 0, "Proportion in sample 1")
	cmd.Flags().IntVar(&n1, "n1", 0, "Size of sample 1")
	cmd.Flags().Float64Var(&p2, "p2", 0, "Proportion in sample 2")
	cmd.Flags().IntVar(&n2, "n2", 0, "Size of sample 2")
	cmd.Flags().StringVar(&tail, "tail", "two-sided", tailUsage)
	for _, name := range []string{"p1", "n1", "p2", "n2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newRegionCmd(s *session) *cobra.Command {
	var (
		tail      string
		df        int
		statistic float64
	)

	cmd := &cobra.Command{
		Use:   "region",
		Short: "Rejection region at --alpha",
		Long: `Rejection region at --alpha for a z test, or a t test with --df.
With --stat the statistic is checked against the region.

Example: infstat region --alpha 0.05 --tail upper --df 24 --stat 2.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTailMode(tail)
			if err != nil {
				return err
			}
			region, err := s.engine.RejectionRegion(s.alpha, t, df)
			if err != nil {
				return err
			}
			var stat *float64
			if cmd.Flags().Changed("stat") {
				stat = &statistic
			}
			return s.render(cmd, report.Region(region, s.alpha, df, stat))
		},
	}

	cmd.Flags().StringVar(&tail, "tail", "two-sided", tailUsage)
	cmd.Flags().IntVar(&df, "df", 0, "Degrees of freedom; 0 uses the standard normal")
	cmd.Flags().Float64Var(&statistic, "stat", 0, "Test statistic to check against the region")
	return cmd
}
