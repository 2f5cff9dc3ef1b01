// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package offscreen

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggchart"
)

// Common errors returned by View operations.
var (
	// ErrClosed is returned when operations are attempted on a closed view.
	ErrClosed = errors.New("offscreen: view is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("offscreen: invalid dimensions")
)

// View is an offscreen host: a gg pixmap of fixed physical size with a
// configurable display density and accessibility text scale.
//
// View implements gpucontext.WindowProvider and the FontScale part of
// gpucontext.PlatformProvider, so it is both the Redrawer and the
// Environment of its binding.
//
// View is NOT safe for concurrent use. Drive it from one goroutine, or
// route work through a Loop.
type View struct {
	dc        *gg.Context
	binding   *ggchart.Binding
	width     int // physical pixels
	height    int
	scale     float64
	fontScale float32
	pending   bool
	redraws   int
	frames    int
	closed    bool
	loop      *Loop
}

var _ gpucontext.WindowProvider = (*View)(nil)

// New creates a View whose pixmap is width x height physical pixels.
func New(width, height int, opts ...Option) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		dc:        gg.NewContext(width, height),
		width:     width,
		height:    height,
		scale:     o.scale,
		fontScale: o.fontScale,
		loop:      o.loop,
	}
	v.binding = ggchart.NewBinding(v, o.bindingOptions...)
	return v, nil
}

// SetChart binds c to the view; nil unbinds. A redraw is requested unless
// c is already bound.
func (v *View) SetChart(c ggchart.Chart) {
	v.binding.SetModel(c)
}

// Chart returns the bound chart, or nil.
func (v *View) Chart() ggchart.Chart {
	return v.binding.Model()
}

// Binding exposes the view's binding.
func (v *View) Binding() *ggchart.Binding {
	return v.binding
}

// RequestRedraw marks the view for repaint on the next Frame.
func (v *View) RequestRedraw() {
	v.pending = true
	v.redraws++
}

// Redraws returns how many redraw requests the view has received.
func (v *View) Redraws() int {
	return v.redraws
}

// Frames returns how many frames have been painted.
func (v *View) Frames() int {
	return v.frames
}

// Pending reports whether a redraw has been requested since the last Frame.
func (v *View) Pending() bool {
	return v.pending
}

// Frame paints the view if a redraw is pending and reports whether it did.
// Requests made while painting schedule another frame.
func (v *View) Frame() (bool, error) {
	if v.closed {
		return false, ErrClosed
	}
	if !v.pending {
		return false, nil
	}
	v.pending = false
	v.paint()
	return true, nil
}

// Paint paints the view unconditionally.
func (v *View) Paint() error {
	if v.closed {
		return ErrClosed
	}
	v.pending = false
	v.paint()
	return nil
}

func (v *View) paint() {
	v.dc.Clear()
	v.binding.Paint(v.dc, v.width, v.height, v)
	v.frames++
}

// Size returns the view size in logical points.
func (v *View) Size() (width, height int) {
	s := v.binding.Scale(v)
	return int(float64(v.width) / s.Pixel), int(float64(v.height) / s.Pixel)
}

// PixelSize returns the view size in physical pixels.
func (v *View) PixelSize() (width, height int) {
	return v.width, v.height
}

// ScaleFactor returns the configured display density.
func (v *View) ScaleFactor() float64 {
	return v.scale
}

// FontScale returns the configured accessibility text scale.
func (v *View) FontScale() float32 {
	return v.fontScale
}

// SetScaleFactor changes the display density, as when a window moves to
// another monitor. The redraw request is routed through the view's Loop
// when one was configured, so SetScaleFactor may be called from any
// goroutine in that case.
func (v *View) SetScaleFactor(scale float64) {
	v.post(func() { v.scale = scale })
}

// SetFontScale changes the accessibility text scale. Routing is the same
// as for SetScaleFactor.
func (v *View) SetFontScale(scale float32) {
	v.post(func() { v.fontScale = scale })
}

func (v *View) post(apply func()) {
	if v.loop == nil {
		apply()
		v.binding.ConfigChanged(nil)
		return
	}
	v.loop.Post(apply)
	v.binding.ConfigChanged(v.loop)
}

// Resize changes the physical size of the view and requests a redraw.
func (v *View) Resize(width, height int) error {
	if v.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == v.width && height == v.height {
		return nil
	}
	if err := v.dc.Resize(width, height); err != nil {
		return fmt.Errorf("offscreen: context resize failed: %w", err)
	}
	v.width, v.height = width, height
	v.RequestRedraw()
	return nil
}

// Context returns the underlying drawing context, or nil once closed.
func (v *View) Context() *gg.Context {
	if v.closed {
		return nil
	}
	return v.dc
}

// Image returns the current pixels.
func (v *View) Image() (image.Image, error) {
	if v.closed {
		return nil, ErrClosed
	}
	return v.dc.Image(), nil
}

// EncodePNG writes the current pixels to w as PNG.
func (v *View) EncodePNG(w io.Writer) error {
	if v.closed {
		return ErrClosed
	}
	return v.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to a PNG file.
func (v *View) SavePNG(path string) error {
	if v.closed {
		return ErrClosed
	}
	return v.dc.SavePNG(path)
}

// Close unbinds the chart and releases the pixmap.
// Close is idempotent - multiple calls are safe.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.binding.Close()
	if v.dc != nil {
		_ = v.dc.Close()
		v.dc = nil
	}
	return nil
}
