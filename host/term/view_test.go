// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
)

// solidChart fills its area with one colour and records draws.
type solidChart struct {
	sig   ggchart.Signal
	color gg.RGBA
	sizes [][2]int
}

func (c *solidChart) Invalidated() *ggchart.Signal { return &c.sig }

func (c *solidChart) Draw(dc *gg.Context, w, h int, _ float64) {
	c.sizes = append(c.sizes, [2]int{w, h})
	dc.SetColor(c.color)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	_ = dc.Fill()
}

func newSimView(t *testing.T, cols, rows int, opts ...Option) (*View, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	v, err := New(sim, opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(func() { _ = v.Close() })
	sim.SetSize(cols, rows)
	v.Sync()
	return v, sim
}

func TestNewNilScreen(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilScreen) {
		t.Errorf("New(nil) = %v, want ErrNilScreen", err)
	}
}

func TestViewPaintWritesHalfBlocks(t *testing.T) {
	v, sim := newSimView(t, 4, 2)
	c := &solidChart{color: gg.RGB(1, 0, 0)}
	v.SetChart(c)

	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	if len(c.sizes) != 1 || c.sizes[0] != [2]int{4 * DefaultCellWidth, 2 * DefaultCellHeight} {
		t.Fatalf("draw sizes = %v", c.sizes)
	}

	cells, w, h := sim.GetContents()
	if w != 4 || h != 2 {
		t.Fatalf("screen = %dx%d", w, h)
	}
	for i, cell := range cells {
		if len(cell.Runes) == 0 || cell.Runes[0] != upperHalfBlock {
			t.Fatalf("cell %d runes = %q", i, cell.Runes)
		}
		fg, bg, _ := cell.Style.Decompose()
		if r, g, b := fg.RGB(); !isRed(r, g, b) {
			t.Errorf("cell %d fg = %d,%d,%d, want red", i, r, g, b)
		}
		if r, g, b := bg.RGB(); !isRed(r, g, b) {
			t.Errorf("cell %d bg = %d,%d,%d, want red", i, r, g, b)
		}
	}
}

func isRed(r, g, b int32) bool {
	return r > 240 && g < 16 && b < 16
}

func TestViewUnboundPaintUsesTerminalColours(t *testing.T) {
	v, sim := newSimView(t, 3, 1)
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	cells, _, _ := sim.GetContents()
	fg, bg, _ := cells[0].Style.Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("unbound cell colours = %v/%v, want defaults", fg, bg)
	}
}

func TestViewScaleFactor(t *testing.T) {
	v, _ := newSimView(t, 10, 5, WithScaleFactor(2), WithCellSize(4, 8))
	c := &solidChart{color: gg.RGB(0, 0, 1)}
	v.SetChart(c)
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	if got, want := c.sizes[0], [2]int{20, 20}; got != want {
		t.Errorf("logical size = %v, want %v", got, want)
	}
	if w, h := v.Size(); w != 20 || h != 20 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

func TestViewSizeUsesBindingResolver(t *testing.T) {
	fixed := ggchart.ScaleResolverFunc(func(ggchart.Environment) ggchart.Scale {
		return ggchart.Scale{Pixel: 4, Text: 1}
	})
	v, _ := newSimView(t, 10, 5, WithCellSize(4, 8), WithBindingOptions(ggchart.WithResolver(fixed)))
	c := &solidChart{color: gg.RGB(0, 0, 1)}
	v.SetChart(c)
	if err := v.Paint(); err != nil {
		t.Fatal(err)
	}
	w, h := v.Size()
	if w != 10 || h != 10 {
		t.Errorf("Size() = %dx%d, want 10x10", w, h)
	}
	if c.sizes[0] != [2]int{w, h} {
		t.Errorf("draw size %v differs from Size() %dx%d", c.sizes[0], w, h)
	}
}

func TestViewSyncRequestsRedraw(t *testing.T) {
	v, sim := newSimView(t, 4, 2)
	_ = v.Paint()
	if v.Pending() {
		t.Fatal("pending after paint")
	}
	v.Sync()
	if v.Pending() {
		t.Error("Sync without size change requested a redraw")
	}
	sim.SetSize(6, 3)
	v.Sync()
	if !v.Pending() {
		t.Error("Sync after resize did not request a redraw")
	}
	if w, h := v.PixelSize(); w != 6*DefaultCellWidth || h != 3*DefaultCellHeight {
		t.Errorf("PixelSize() = %dx%d", w, h)
	}
}

func TestViewRun(t *testing.T) {
	v, sim := newSimView(t, 4, 2)
	c := &solidChart{color: gg.RGB(0, 1, 0)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- v.Run(ctx) }()

	painted := make(chan int, 1)
	v.Post(func() { v.SetChart(c) })
	v.SetScaleFactor(2)
	v.Post(func() {
		c.sig.Emit()
		painted <- len(c.sizes)
	})

	select {
	case <-painted:
	case <-ctx.Done():
		t.Fatal("posted work never ran")
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil on quit key", err)
		}
	case <-ctx.Done():
		t.Fatal("Run did not stop on quit key")
	}
	if len(c.sizes) == 0 {
		t.Error("chart was never drawn")
	}
	if v.ScaleFactor() != 2 {
		t.Errorf("ScaleFactor() = %v, want 2", v.ScaleFactor())
	}
}

func TestViewRunStopsOnContext(t *testing.T) {
	v, _ := newSimView(t, 2, 2)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- v.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestViewClose(t *testing.T) {
	v, _ := newSimView(t, 2, 2)
	c := &solidChart{}
	v.SetChart(c)
	if err := v.Close(); err != nil {
		t.Fatal(err)
	}
	if err := v.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if c.sig.Len() != 0 {
		t.Errorf("registrations after Close = %d", c.sig.Len())
	}
	if err := v.Paint(); !errors.Is(err, ErrClosed) {
		t.Errorf("Paint() after Close = %v", err)
	}
	if err := v.Run(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Run() after Close = %v", err)
	}
}
