package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"traceytext/internal/jsonutil"
	"traceytext/internal/slide"
	"traceytext/internal/source"
	"traceytext/internal/ui"
)

var (
	renderSlide int
	renderJSON  bool
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Print what every view shows on one slide",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVarP(&renderSlide, "slide", "s", 1, "slide to render (clamped to the presentation)")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "print the views' HTML as JSON")
	rootCmd.AddCommand(renderCmd)
}

// renderedView is one view in the JSON output of render.
type renderedView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	HTML string `json:"html"`
}

type renderedSlide struct {
	Slide int            `json:"slide"`
	Max   int            `json:"max"`
	Views []renderedView `json:"views"`
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := source.Load(args[0])
	if err != nil {
		return err
	}
	doc := slide.NewMemoryDocument(p.ElementIDs()...)
	c, err := p.Container(doc, slide.WithLogger(logger))
	if err != nil {
		return err
	}
	c.Jump(renderSlide)

	out := renderedSlide{Slide: c.Current(), Max: c.Max()}
	for _, v := range p.Views {
		html, _ := doc.Content(v.ID)
		out.Views = append(out.Views, renderedView{ID: v.ID, Kind: string(v.Kind), HTML: html})
	}
	if renderJSON {
		return jsonutil.WriteIndent(cmd.OutOrStdout(), out)
	}

	plain := lipgloss.NewStyle()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Slide %d/%d\n", out.Slide, out.Max)
	for _, v := range out.Views {
		fmt.Fprintf(w, "\n== %s (%s)\n", v.ID, v.Kind)
		text := ui.RenderMarkup(v.HTML, plain)
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintln(w, text)
	}
	return nil
}
