package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the pricer CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pricer version %s\n", version)
		fmt.Println("European and Asian option pricing by closed form and Monte Carlo")
		fmt.Println("https://github.com/rustyeddy/pricer")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
