// Command coxfire runs numbers-game files against the engine.
//
//	coxfire run game.yaml            # apply the file's firing list
//	coxfire fire --node 2 game.yaml  # fire a single node instead
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coxfire",
	Short: "Play the numbers game on Coxeter graphs",
	Long: `coxfire loads a YAML game description (structural matrix, starting
position, firing list) and prints the resulting position.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
