package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricer/pricing"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a European option with the Black-Scholes closed form",
	Long: `Compute the closed-form Black-Scholes call and put values for a
single European option, optionally with the Greeks or the implied
volatility for an observed premium.

Examples:
  pricer price -S 100 -K 100 -T 1 -r 0.05 -v 0.12
  pricer price -S 100 -K 100 -T 1 -r 0.05 -v 0.12 --greeks
  pricer price -S 100 -K 100 -T 1 -r 0.05 --iv 7.50 --right call`,
	RunE: runPrice,
}

var (
	prSpot   float64
	prStrike float64
	prMat    float64
	prRate   float64
	prVol    float64
	prGreeks bool
	prIV     float64
	prRight  string
)

func init() {
	rootCmd.AddCommand(priceCmd)

	priceCmd.Flags().Float64VarP(&prSpot, "spot", "S", 100, "spot price of the underlying")
	priceCmd.Flags().Float64VarP(&prStrike, "strike", "K", 100, "strike price")
	priceCmd.Flags().Float64VarP(&prMat, "maturity", "T", 1, "time to maturity in years")
	priceCmd.Flags().Float64VarP(&prRate, "rate", "r", 0.05, "risk-free rate")
	priceCmd.Flags().Float64VarP(&prVol, "vol", "v", 0.12, "volatility")
	priceCmd.Flags().BoolVar(&prGreeks, "greeks", false, "also print the Greeks")
	priceCmd.Flags().Float64Var(&prIV, "iv", 0, "solve implied volatility for this observed premium instead of pricing")
	priceCmd.Flags().StringVar(&prRight, "right", "call", "option side for --iv (call or put)")
}

func runPrice(cmd *cobra.Command, args []string) error {
	p := pricing.Params{S: prSpot, K: prStrike, T: prMat, R: prRate, Sigma: prVol}

	if prIV > 0 {
		right := pricing.Call
		if prRight == "put" {
			right = pricing.Put
		} else if prRight != "call" {
			return fmt.Errorf("right must be 'call' or 'put', got %q", prRight)
		}
		iv, err := pricing.ImpliedVol(p, prIV, right)
		if err != nil {
			return err
		}
		color.Cyan("implied volatility (%s @ %.4f): %.6f", right, prIV, iv)
		return nil
	}

	if err := p.Validate(); err != nil {
		return err
	}

	call, put := pricing.Price(p)
	color.Green("call: %.6f", call)
	color.Red("put:  %.6f", put)

	if prGreeks {
		cg, pg := pricing.Greeks(p)
		fmt.Println()
		printGreeks("call", cg)
		printGreeks("put", pg)
	}
	return nil
}

func printGreeks(side string, g pricing.GreekSet) {
	color.Yellow("%s greeks:", side)
	fmt.Printf("  delta: %12.6f\n", g.Delta)
	fmt.Printf("  gamma: %12.6f\n", g.Gamma)
	fmt.Printf("  vega:  %12.6f\n", g.Vega)
	fmt.Printf("  theta: %12.6f\n", g.Theta)
	fmt.Printf("  rho:   %12.6f\n", g.Rho)
}
