package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricer/chart"
	"github.com/rustyeddy/pricer/mc"
	"github.com/rustyeddy/pricer/pricing"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render simulated paths or analytic price curves to an image",
	Long: `Render charts to an image file (format chosen by extension).

Kinds:
  paths - a fan of simulated GBM trajectories
  curve - analytic call/put value against spot

Examples:
  pricer chart paths -S 100 -v 0.2 -n 50 -m 252 -o paths.png
  pricer chart curve -K 100 -T 1 -r 0.05 -v 0.12 -o curve.png`,
}

var chartPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Draw a fan of simulated GBM trajectories",
	RunE:  runChartPaths,
}

var chartCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Draw analytic call/put value against spot",
	RunE:  runChartCurve,
}

var (
	chSpot   float64
	chStrike float64
	chMat    float64
	chRate   float64
	chVol    float64
	chPaths  int
	chSteps  int
	chSeed   uint64
	chMax    int
	chOut    string
)

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.AddCommand(chartPathsCmd)
	chartCmd.AddCommand(chartCurveCmd)

	chartCmd.PersistentFlags().Float64VarP(&chSpot, "spot", "S", 100, "spot price of the underlying")
	chartCmd.PersistentFlags().Float64VarP(&chStrike, "strike", "K", 100, "strike price")
	chartCmd.PersistentFlags().Float64VarP(&chMat, "maturity", "T", 1, "time to maturity in years")
	chartCmd.PersistentFlags().Float64VarP(&chRate, "rate", "r", 0.05, "risk-free rate")
	chartCmd.PersistentFlags().Float64VarP(&chVol, "vol", "v", 0.12, "volatility")
	chartCmd.PersistentFlags().StringVarP(&chOut, "out", "o", "chart.png", "output image file")

	chartPathsCmd.Flags().IntVarP(&chPaths, "paths", "n", 50, "number of simulated paths")
	chartPathsCmd.Flags().IntVarP(&chSteps, "steps", "m", 252, "steps per path")
	chartPathsCmd.Flags().Uint64Var(&chSeed, "seed", 0, "random seed (0 = fresh entropy)")
	chartPathsCmd.Flags().IntVar(&chMax, "max", 50, "maximum trajectories to draw")
}

func runChartPaths(cmd *cobra.Command, args []string) error {
	p := pricing.Params{S: chSpot, K: chStrike, T: chMat, R: chRate, Sigma: chVol}

	sim := mc.Simulator{Paths: chPaths, Steps: chSteps, Seed: chSeed}
	ps, err := sim.Simulate(p)
	if err != nil {
		return err
	}

	if err := chart.Paths(ps, chMax, chOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", chOut)
	return nil
}

func runChartCurve(cmd *cobra.Command, args []string) error {
	p := pricing.Params{S: chSpot, K: chStrike, T: chMat, R: chRate, Sigma: chVol}
	if err := p.Validate(); err != nil {
		return err
	}

	// Spot sweep from half to one-and-a-half strikes.
	n := 101
	spots := make([]float64, n)
	lo, hi := 0.5*p.K, 1.5*p.K
	for i := range spots {
		spots[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}

	if err := chart.PriceCurve(p, spots, chOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", chOut)
	return nil
}
