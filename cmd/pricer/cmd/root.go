package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pricer",
	Short: "European and Asian option pricing by closed form and Monte Carlo",
	Long: `Pricer values European options with the closed-form Black-Scholes
formula and estimates European and Asian option prices by Monte Carlo
simulation of geometric Brownian motion paths.

It provides tools for:
  - Closed-form call/put pricing, Greeks, and implied volatility
  - Monte Carlo pricing with seedable, parallel path simulation
  - Generating pricing datasets over parameter grids (CSV or SQLite)
  - Charting simulated paths and analytic price curves

Complete documentation is available at https://github.com/rustyeddy/pricer`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
