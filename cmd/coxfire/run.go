package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/coxeter/internal/gamefile"
	"github.com/katalvlaran/coxeter/numgame"
)

var runCmd = &cobra.Command{
	Use:   "run <game.yaml>",
	Short: "Apply the file's firing list and print the final position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gamefile.Load(args[0])
		if err != nil {
			return err
		}
		pos, err := g.Run()
		if err != nil {
			return err
		}
		printPosition(cmd.OutOrStdout(), g.Name, pos)

		return nil
	},
}

var fireNode int

var fireCmd = &cobra.Command{
	Use:   "fire --node N <game.yaml>",
	Short: "Fire a single node on the file's position, ignoring its firing list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gamefile.Load(args[0])
		if err != nil {
			return err
		}
		pos, err := g.RunNode(fireNode)
		if err != nil {
			return err
		}
		printPosition(cmd.OutOrStdout(), g.Name, pos)

		return nil
	},
}

// printPosition renders one result line: an optional name prefix and
// the space-separated coordinates.
func printPosition(w io.Writer, name string, pos numgame.Position) {
	parts := make([]string, len(pos))
	for i, c := range pos {
		parts[i] = fmt.Sprintf("%d", c)
	}
	if name != "" {
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(parts, " "))

		return
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func init() {
	fireCmd.Flags().IntVar(&fireNode, "node", 0, "node index to fire")
	_ = fireCmd.MarkFlagRequired("node")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fireCmd)
}
