// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggchart"
)

// Common errors returned by View operations.
var (
	// ErrNilScreen is returned when New is called without a screen.
	ErrNilScreen = errors.New("term: nil screen")

	// ErrClosed is returned when operations are attempted on a closed view.
	ErrClosed = errors.New("term: view is closed")
)

// upperHalfBlock paints the top half of a cell in the foreground colour and
// the bottom half in the background colour, giving two pixels per cell.
const upperHalfBlock = '▀'

// Default supersampling of one terminal cell, in drawing pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// View hosts a ggchart binding on a terminal screen.
//
// The chart is drawn into a supersampled gg pixmap of CellWidth x CellHeight
// pixels per cell, scaled down to two pixels per cell and written as
// half-block characters.
//
// All methods except Post, SetScaleFactor and SetFontScale must be called
// from the goroutine running Run.
type View struct {
	screen    tcell.Screen
	binding   *ggchart.Binding
	dc        *gg.Context
	cellW     int
	cellH     int
	cols      int
	rows      int
	scale     float64
	fontScale float32
	pending   bool
	closed    bool

	mu    sync.Mutex
	queue []func()
}

// interrupt payloads.
type (
	wakeEvent struct{}
	stopEvent struct{}
)

// New initialises screen and creates a View covering all of it.
// The view owns the screen from now on; Close finalises it.
func New(screen tcell.Screen, opts ...Option) (*View, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: screen init failed: %w", err)
	}
	screen.Clear()

	v := &View{
		screen:    screen,
		cellW:     o.cellW,
		cellH:     o.cellH,
		scale:     o.scale,
		fontScale: o.fontScale,
	}
	v.binding = ggchart.NewBinding(v, o.bindingOptions...)
	v.Sync()
	return v, nil
}

// SetChart binds c to the view; nil unbinds.
func (v *View) SetChart(c ggchart.Chart) {
	v.binding.SetModel(c)
}

// Chart returns the bound chart, or nil.
func (v *View) Chart() ggchart.Chart {
	return v.binding.Model()
}

// RequestRedraw schedules a repaint after the current event.
func (v *View) RequestRedraw() {
	v.pending = true
}

// Pending reports whether a repaint is scheduled.
func (v *View) Pending() bool {
	return v.pending
}

// ScaleFactor returns the configured density of the drawing pixmap.
func (v *View) ScaleFactor() float64 {
	return v.scale
}

// FontScale returns the configured text scale.
func (v *View) FontScale() float32 {
	return v.fontScale
}

// Size returns the logical size the chart is drawn at.
func (v *View) Size() (width, height int) {
	pw, ph := v.PixelSize()
	s := v.binding.Scale(v)
	return int(float64(pw) / s.Pixel), int(float64(ph) / s.Pixel)
}

// PixelSize returns the size of the supersampled pixmap.
func (v *View) PixelSize() (width, height int) {
	return v.cols * v.cellW, v.rows * v.cellH
}

// Post queues fn to run on the Run goroutine. Safe for concurrent use.
func (v *View) Post(fn func()) {
	v.mu.Lock()
	v.queue = append(v.queue, fn)
	v.mu.Unlock()
	// A full event queue already holds a wake-up that drains this work.
	_ = v.screen.PostEvent(tcell.NewEventInterrupt(wakeEvent{}))
}

// SetScaleFactor changes the density from any goroutine.
func (v *View) SetScaleFactor(scale float64) {
	v.Post(func() { v.scale = scale })
	v.binding.ConfigChanged(v)
}

// SetFontScale changes the text scale from any goroutine.
func (v *View) SetFontScale(scale float32) {
	v.Post(func() { v.fontScale = scale })
	v.binding.ConfigChanged(v)
}

// Sync adopts the current screen size and schedules a repaint.
func (v *View) Sync() {
	cols, rows := v.screen.Size()
	if cols == v.cols && rows == v.rows && v.dc != nil {
		return
	}
	v.cols, v.rows = max(cols, 0), max(rows, 0)
	pw, ph := max(v.cols*v.cellW, 1), max(v.rows*v.cellH, 1)
	if v.dc == nil {
		v.dc = gg.NewContext(pw, ph)
	} else if err := v.dc.Resize(pw, ph); err != nil {
		ggchart.Logger().Warn("term: resize failed", "err", err, "cols", cols, "rows", rows)
	}
	v.RequestRedraw()
}

// Paint repaints the screen now.
func (v *View) Paint() error {
	if v.closed {
		return ErrClosed
	}
	v.pending = false
	pw, ph := v.PixelSize()
	v.dc.Clear()
	v.binding.Paint(v.dc, pw, ph, v)
	v.blit()
	v.screen.Show()
	return nil
}

// blit downsamples the pixmap to two pixels per cell and writes the cells.
func (v *View) blit() {
	if v.cols == 0 || v.rows == 0 {
		return
	}
	small := image.NewRGBA(image.Rect(0, 0, v.cols, v.rows*2))
	src := v.dc.Image()
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			top := cellColor(small, x, 2*y)
			bottom := cellColor(small, x, 2*y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
}

// cellColor converts a premultiplied pixel to a terminal colour. Fully
// transparent pixels keep the terminal's own colour.
func cellColor(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	if c.A == 0 {
		return tcell.ColorDefault
	}
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*255/a, int32(c.G)*255/a, int32(c.B)*255/a)
}

// Run processes screen events until ctx is done, the user quits (q, Esc,
// Ctrl-C) or the screen is finalised. It paints whenever a redraw is pending.
func (v *View) Run(ctx context.Context) error {
	if v.closed {
		return ErrClosed
	}
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(stopEvent{}))
		case <-stop:
		}
	}()

	for {
		v.drain()
		if v.pending {
			if err := v.Paint(); err != nil {
				return err
			}
		}

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.Sync()
			v.screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(stopEvent); ok {
				return ctx.Err()
			}
		}
	}
}

func (v *View) drain() {
	for {
		v.mu.Lock()
		q := v.queue
		v.queue = nil
		v.mu.Unlock()
		if len(q) == 0 {
			return
		}
		for _, fn := range q {
			fn()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Close unbinds the chart and finalises the screen.
// Close is idempotent - multiple calls are safe.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.binding.Close()
	v.screen.Fini()
	if v.dc != nil {
		_ = v.dc.Close()
		v.dc = nil
	}
	return nil
}
