// Command ggchart renders the demo bar chart through a ggchart host.
//
// By default the chart is rendered offscreen and written as PNG. With --term
// it is shown in the terminal and follows terminal resizes until q, Esc or
// Ctrl-C. --animate changes the data on a ticker from another goroutine.
// --data loads the bars from the first two columns of an .xlsx sheet.
//
// Set GGCHART_LOG to debug, info, warn or error to enable logging to stderr.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/host/offscreen"
	"github.com/gogpu/ggchart/host/term"
	"github.com/gogpu/ggchart/internal/demo"
)

type config struct {
	width     int
	height    int
	scale     float64
	textScale float64
	output    string
	data      string
	sheet     string
	term      bool
	animate   bool
	frames    int
	interval  time.Duration
}

func main() {
	if lvl, ok := parseLevel(os.Getenv("GGCHART_LOG")); ok {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "ggchart",
		Short: "Render a bar chart offscreen or in the terminal",
		Long: `ggchart renders a bar chart through the ggchart binding layer,
either to a PNG file or live in the terminal.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chart, err := loadChart(cfg)
			if err != nil {
				return err
			}
			if cfg.term {
				return runTerm(cmd.Context(), cfg, chart)
			}
			return runOffscreen(cmd.Context(), cfg, chart)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.width, "width", 800, "image width in pixels")
	f.IntVar(&cfg.height, "height", 600, "image height in pixels")
	f.Float64Var(&cfg.scale, "scale", 1, "display density (physical pixels per logical unit)")
	f.Float64Var(&cfg.textScale, "text-scale", 1, "text scale")
	f.StringVarP(&cfg.output, "output", "o", "chart.png", "output file")
	f.StringVar(&cfg.data, "data", "", "xlsx workbook with labels in column A and values in column B")
	f.StringVar(&cfg.sheet, "sheet", "", "sheet to read from --data (default: first sheet)")
	f.BoolVar(&cfg.term, "term", false, "show the chart in the terminal")
	f.BoolVar(&cfg.animate, "animate", false, "change the data on a ticker")
	f.IntVar(&cfg.frames, "frames", 8, "frames written with --animate")
	f.DurationVar(&cfg.interval, "interval", 500*time.Millisecond, "animation interval")
	return cmd
}

func loadChart(cfg config) (*demo.Bars, error) {
	if cfg.data == "" {
		return demo.Sample(), nil
	}
	entries, err := demo.LoadXLSX(cfg.data, cfg.sheet)
	if err != nil {
		return nil, err
	}
	return demo.NewBars(entries...), nil
}

// parseLevel maps a GGCHART_LOG value to a slog level.
func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

func bindingOptions() []ggchart.BindingOption {
	return []ggchart.BindingOption{ggchart.WithDefaultTypeface(ggchart.DefaultTypeface)}
}

func runOffscreen(ctx context.Context, cfg config, chart *demo.Bars) error {
	loop := offscreen.NewLoop()
	view, err := offscreen.New(cfg.width, cfg.height,
		offscreen.WithScaleFactor(cfg.scale),
		offscreen.WithFontScale(float32(cfg.textScale)),
		offscreen.WithLoop(loop),
		offscreen.WithBindingOptions(bindingOptions()...),
	)
	if err != nil {
		return err
	}
	defer func() { _ = view.Close() }()
	loop.Attach(view)

	view.SetChart(chart)
	if _, err := loop.Drain(); err != nil {
		return err
	}

	if !cfg.animate || cfg.frames <= 1 {
		if err := view.SavePNG(cfg.output); err != nil {
			return err
		}
		log.Printf("Chart saved to %s (%dx%d)\n", cfg.output, cfg.width, cfg.height)
		return nil
	}

	for i := range cfg.frames {
		if i > 0 {
			step := i
			done := make(chan struct{})
			go func() {
				loop.Post(func() { wave(chart, step) })
				loop.Post(func() { close(done) })
			}()
			if err := drainUntil(ctx, loop, done); err != nil {
				return err
			}
		}
		name := frameName(cfg.output, i)
		if err := view.SavePNG(name); err != nil {
			return err
		}
	}
	log.Printf("%d frames saved to %s (%dx%d)\n", cfg.frames, frameName(cfg.output, 0), cfg.width, cfg.height)
	return nil
}

// drainUntil runs the loop until done is closed.
func drainUntil(ctx context.Context, loop *offscreen.Loop, done <-chan struct{}) error {
	for {
		if _, err := loop.Drain(); err != nil {
			return err
		}
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}
}

// frameName inserts a frame number before the extension of path.
func frameName(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(path, ext), i, ext)
}

func runTerm(ctx context.Context, cfg config, chart *demo.Bars) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	view, err := term.New(screen,
		term.WithScaleFactor(cfg.scale),
		term.WithFontScale(float32(cfg.textScale)),
		term.WithBindingOptions(bindingOptions()...),
	)
	if err != nil {
		return err
	}
	defer func() { _ = view.Close() }()

	view.SetChart(chart)

	if cfg.animate {
		go func() {
			t := time.NewTicker(cfg.interval)
			defer t.Stop()
			for step := 1; ; step++ {
				select {
				case <-ctx.Done():
					return
				case <-t.C:
					s := step
					view.Post(func() { wave(chart, s) })
				}
			}
		}()
	}
	return view.Run(ctx)
}

// wave moves every bar along a sine wave. It must run on the host's UI
// goroutine.
func wave(chart *demo.Bars, step int) {
	entries := chart.Entries()
	for i := range entries {
		phase := float64(step)/4 + float64(i)*0.9
		entries[i].Value = 350 + 250*math.Sin(phase)
	}
	chart.SetEntries(entries)
}
