package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"traceytext/internal/slide"
	"traceytext/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Parse FILE and report its views",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := source.Load(args[0])
	if err != nil {
		return err
	}
	c, err := p.Container(nil)
	if err != nil {
		return err
	}

	counts := make(map[slide.Kind]int)
	for _, v := range c.Views() {
		counts[v.Kind()]++
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %d views, %d slides\n", args[0], len(c.Views()), c.Max())
	for _, k := range slide.Kinds() {
		if counts[k] > 0 {
			fmt.Fprintf(w, "  %-13s %d\n", k, counts[k])
		}
	}
	for _, v := range c.Views() {
		fmt.Fprintf(w, "  #%s %s (%d)\n", v.ID(), v.Kind(), v.Extent())
	}
	return nil
}
