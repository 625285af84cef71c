package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"traceytext/internal/slide"
	"traceytext/internal/source"
	"traceytext/internal/trace"
	"traceytext/internal/ui"
)

var (
	presentWatch bool
	presentStart int
	presentPanel bool
)

var presentCmd = &cobra.Command{
	Use:   "present FILE",
	Short: "Play FILE in the terminal",
	Long: `Play a presentation in the terminal.

Keys:
  n, l, right    next slide
  p, h, left     previous slide
  g              jump to a slide
  home, end      first, last slide
  c              show or hide the control panel
  tab            focus the next view (arrows and pgup/pgdn scroll it)
  SPC            leader: SPC g f, SPC g l, SPC r (reload with --watch)
  q              quit`,
	Args: cobra.ExactArgs(1),
	RunE: runPresent,
}

func init() {
	presentCmd.Flags().BoolVarP(&presentWatch, "watch", "w", false, "reload when FILE changes")
	presentCmd.Flags().IntVarP(&presentStart, "slide", "s", 1, "slide to open on")
	presentCmd.Flags().BoolVar(&presentPanel, "panel", false, "show the control panel")
	rootCmd.AddCommand(presentCmd)
}

func runPresent(cmd *cobra.Command, args []string) error {
	path := args[0]
	p, err := source.Load(path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	exporter, err := trace.NewOTLPExporter(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()
	session := exporter.StartSession(ctx, path, len(p.Views))
	defer session.End()

	opts := ui.PlayerOptions{
		Title:     filepath.Base(path),
		Highlight: cfg.Highlight.Color,
		ShowPanel: presentPanel || cfg.Panel.Enabled,
		FloatX:    cfg.Panel.FloatX,
		FloatY:    cfg.Panel.FloatY,
		Refresh:   cfg.Panel.RefreshInterval(),
		Start:     presentStart,
		Logger:    logger,
		Observers: []slide.Observer{session},
		Load:      func() (*source.Presentation, error) { return source.Load(path) },
	}
	if presentWatch {
		w, err := ui.NewWatcher(path, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Watcher = w
	}

	m, err := ui.NewPlayer(p, opts)
	if err != nil {
		return err
	}
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	logger.Info("presentation closed",
		zap.String("file", path),
		zap.String("session", session.ID()),
		zap.Int("slides_shown", session.Shown()))
	return nil
}
