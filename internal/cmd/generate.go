package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"traceytext/internal/htmlgen"
	"traceytext/internal/source"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate FILE",
	Short: "Write the HTML page that presents FILE in a browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "output", "o", "", "write the page to this file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	p, err := source.Load(args[0])
	if err != nil {
		return err
	}
	opts := htmlgen.Options{
		ScriptSrc:   cfg.Generate.ScriptSrc,
		Object:      cfg.Generate.Object,
		DisplayID:   cfg.Generate.DisplayID,
		EmitDisplay: true,
	}

	var w io.Writer = cmd.OutOrStdout()
	if generateOut != "" {
		f, cerr := os.Create(generateOut)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer closeOutput(f, &err)
		w = f
	}
	if err = htmlgen.Write(w, p, opts); err != nil {
		return err
	}
	logger.Info("page generated",
		zap.String("source", args[0]),
		zap.String("output", generateOut),
		zap.Int("views", len(p.Views)))
	return nil
}

// closeOutput closes c and reports its error through err unless err
// already holds one. A failed close can mean the page never reached disk.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close output: %w", cerr)
	}
}
