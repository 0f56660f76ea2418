package main

import (
	"github.com/spf13/cobra"

	"infstat/internal/report"
)

func newZScoreCmd(s *session) *cobra.Command {
	var x, mu, sigma float64

	cmd := &cobra.Command{
		Use:   "zscore",
		Short: "Standardize x and report P(Z <= z)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := s.engine.Standardize(x, mu, sigma)
			if err != nil {
				return err
			}
			return s.render(cmd, report.Score(x, score))
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "Observed value")
	cmd.Flags().Float64Var(&mu, "mu", 0, "Population mean")
	cmd.Flags().Float64Var(&sigma, "sigma", 1, "Population standard deviation")
	_ = cmd.MarkFlagRequired("x")
	return cmd
}

func newQuantileCmd(s *session) *cobra.Command {
	var (
		p  float64
		df int
	)

	cmd := &cobra.Command{
		Use:   "quantile",
		Short: "Inverse CDF of the standard normal, or Student's t with --df",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if df > 0 {
				t, err := s.engine.Distributions().StudentTQuantile(p, df)
				if err != nil {
					return err
				}
				return s.render(cmd, report.Quantity("Student-t quantile", "t", t))
			}
			z, err := s.engine.ZFromProbability(p)
			if err != nil {
				return err
			}
			return s.render(cmd, report.Quantity("Normal quantile", "z", z))
		},
	}

	cmd.Flags().Float64Var(&p, "p", 0, "Lower-tail probability in (0, 1)")
	cmd.Flags().IntVar(&df, "df", 0, "Degrees of freedom; 0 uses the standard normal")
	_ = cmd.MarkFlagRequired("p")
	return cmd
}

func newCriticalCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "critical",
		Short: "Two-sided normal critical value for --confidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := s.engine.CriticalValue(s.confidence)
			if err != nil {
				return err
			}
			return s.render(cmd, report.Quantity("Critical value", "z", z))
		},
	}
}
