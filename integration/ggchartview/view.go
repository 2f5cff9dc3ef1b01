// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchartview

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggchart"
)

// Common errors returned by View operations.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("ggchartview: nil DeviceProvider")

	// ErrNilWindow is returned when a nil WindowProvider is passed.
	ErrNilWindow = errors.New("ggchartview: nil WindowProvider")

	// ErrClosed is returned when operations are attempted on a closed view.
	ErrClosed = errors.New("ggchartview: view is closed")
)

// View hosts a ggchart binding in a gogpu window.
//
// View implements gpucontext.WindowProvider by delegating to the window, so
// it is the environment the binding resolves its scale from.
type View struct {
	window  gpucontext.WindowProvider
	canvas  *ggcanvas.Canvas
	binding *ggchart.Binding
	width   int // physical
	height  int // physical
	dirty   bool
	frames  int
	closed  bool
}

// New creates a View for window, drawing through provider's GPU device.
// The canvas is allocated at the window's physical size.
func New(provider gpucontext.DeviceProvider, window gpucontext.WindowProvider, opts ...ggchart.BindingOption) (*View, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if window == nil {
		return nil, ErrNilWindow
	}

	v := &View{window: window, dirty: true}
	v.binding = ggchart.NewBinding(v, opts...)

	pw, ph := v.physicalSize()
	canvas, err := ggcanvas.NewWithScale(provider, pw, ph, 1)
	if err != nil {
		return nil, fmt.Errorf("ggchartview: canvas: %w", err)
	}
	v.canvas = canvas
	v.width, v.height = pw, ph
	return v, nil
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, window gpucontext.WindowProvider, opts ...ggchart.BindingOption) *View {
	v, err := New(provider, window, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// physicalSize converts the window's logical size to device pixels at the
// density the binding paints with.
func (v *View) physicalSize() (int, int) {
	lw, lh := v.window.Size()
	s := v.binding.Scale(v).Pixel
	return max(int(float64(lw)*s), 1), max(int(float64(lh)*s), 1)
}

// SetChart binds c to the view; nil unbinds.
func (v *View) SetChart(c ggchart.Chart) {
	v.binding.SetModel(c)
}

// Chart returns the bound chart, or nil.
func (v *View) Chart() ggchart.Chart {
	return v.binding.Model()
}

// Binding returns the view's binding.
func (v *View) Binding() *ggchart.Binding {
	return v.binding
}

// Size returns the window size in logical points.
func (v *View) Size() (width, height int) {
	return v.window.Size()
}

// PixelSize returns the canvas size in device pixels.
func (v *View) PixelSize() (width, height int) {
	return v.width, v.height
}

// ScaleFactor returns the window's density.
func (v *View) ScaleFactor() float64 {
	return v.window.ScaleFactor()
}

// FontScale returns the user's text scale when the window exposes platform
// settings, and 1 otherwise.
func (v *View) FontScale() float32 {
	if pp, ok := v.window.(gpucontext.PlatformProvider); ok {
		return pp.FontScale()
	}
	return 1
}

// RequestRedraw marks the canvas stale and asks the window for a frame.
func (v *View) RequestRedraw() {
	v.dirty = true
	v.window.RequestRedraw()
}

// Context returns the canvas drawing context, or nil once closed.
func (v *View) Context() *gg.Context {
	if v.closed {
		return nil
	}
	return v.canvas.Context()
}

// Dirty reports whether the next Render repaints the chart.
func (v *View) Dirty() bool {
	return v.dirty
}

// Frames returns the number of chart paints so far.
func (v *View) Frames() int {
	return v.frames
}

// Draw paints the bound chart into the canvas.
func (v *View) Draw() error {
	if v.closed {
		return ErrClosed
	}
	v.dirty = false
	v.frames++
	return v.canvas.Draw(func(dc *gg.Context) {
		dc.Clear()
		v.binding.Paint(dc, v.width, v.height, v)
	})
}

// Render repaints the chart if it changed and draws the canvas to dc.
func (v *View) Render(dc gpucontext.TextureDrawer) error {
	if v.closed {
		return ErrClosed
	}
	if v.dirty {
		if err := v.Draw(); err != nil {
			return err
		}
	}
	return v.canvas.RenderTo(dc)
}

// Resize adopts the window's current physical size.
// A redraw is requested only when the size changed.
func (v *View) Resize() error {
	if v.closed {
		return ErrClosed
	}
	pw, ph := v.physicalSize()
	if pw == v.width && ph == v.height {
		return nil
	}
	if err := v.canvas.Resize(pw, ph); err != nil {
		return err
	}
	ggchart.Logger().Debug("ggchartview: resize",
		"physical_w", pw, "physical_h", ph,
		"scale", v.window.ScaleFactor(),
	)
	v.width, v.height = pw, ph
	v.RequestRedraw()
	return nil
}

// ScaleChanged handles a density or text-scale change of the window. The
// canvas is resized and the chart repainted on the goroutine d runs
// functions on; a nil d does both immediately.
func (v *View) ScaleChanged(d ggchart.Dispatcher) {
	if d == nil {
		v.resizeOrLog()
		v.binding.ConfigChanged(nil)
		return
	}
	d.Post(v.resizeOrLog)
	v.binding.ConfigChanged(d)
}

func (v *View) resizeOrLog() {
	if err := v.Resize(); err != nil && !errors.Is(err, ErrClosed) {
		ggchart.Logger().Warn("ggchartview: resize failed", "err", err)
	}
}

// Close unbinds the chart and releases the canvas.
// Close is idempotent - multiple calls are safe.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.binding.Close()
	err := v.canvas.Close()
	v.canvas = nil
	return err
}

// Compile-time check.
var _ gpucontext.WindowProvider = (*View)(nil)
