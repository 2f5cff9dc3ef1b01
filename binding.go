// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"reflect"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Redrawer is the redraw request a host view supplies.
// Every gpucontext.WindowProvider satisfies it.
type Redrawer interface {
	RequestRedraw()
}

// Dispatcher runs functions on the host's UI goroutine.
type Dispatcher interface {
	Post(fn func())
}

// State is the state of a Binding.
type State int

const (
	// Unbound means no chart is attached; paints clear the surface.
	Unbound State = iota
	// Bound means a chart is attached and its change signal is observed.
	Bound
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Unbound:
		return "Unbound"
	case Bound:
		return "Bound"
	default:
		return "Unknown"
	}
}

// Binding associates one host view with at most one chart.
//
// It observes the chart's change signal through a weak Subscription, asks
// the host for a redraw when the chart changes, and on each paint resolves
// the host's scale factors before handing the logical size to Chart.Draw.
//
// A Binding is confined to the host's UI goroutine and is not safe for
// concurrent use. Configuration changes delivered elsewhere go through
// ConfigChanged.
type Binding struct {
	host     Redrawer
	chart    Chart
	sub      *Subscription
	resolver ScaleResolver
	typeface func() *text.FontSource
}

// NewBinding creates an unbound Binding that requests redraws from host.
func NewBinding(host Redrawer, opts ...BindingOption) *Binding {
	o := defaultBindingOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Binding{
		host:     host,
		resolver: o.resolver,
		typeface: o.typeface,
	}
}

// SetModel attaches c, replacing the current chart. A nil c unbinds.
//
// Reassigning the chart that is already bound does nothing. Otherwise the
// previous subscription is disposed, a new one is installed for a non-nil
// chart, and exactly one redraw is requested so the surface reflects the
// new (possibly empty) state without waiting for the next natural paint.
func (b *Binding) SetModel(c Chart) {
	if sameChart(b.chart, c) {
		return
	}
	if b.sub != nil {
		b.sub.Dispose()
		b.sub = nil
	}

	b.chart = c
	if c != nil {
		b.assignTypeface(c)
		b.sub = ObserveInvalidate(c, b, (*Binding).requestRedraw)
	}
	b.requestRedraw()
}

// Model returns the bound chart, or nil.
func (b *Binding) Model() Chart {
	return b.chart
}

// sameChart reports whether a and b are the same model. Charts of an
// uncomparable dynamic type are identified by their change signal.
func sameChart(a, b Chart) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return a.Invalidated() == b.Invalidated()
}

// State returns Bound when a chart is attached.
func (b *Binding) State() State {
	if b.chart != nil {
		return Bound
	}
	return Unbound
}

// Subscription returns the active subscription, or nil when unbound.
func (b *Binding) Subscription() *Subscription {
	return b.sub
}

// Paint renders the bound chart into dc, whose pixmap is physicalWidth by
// physicalHeight device pixels.
//
// When unbound the surface is cleared to transparent and nothing else
// happens. When bound, the scale of env is applied as a uniform transform
// and the chart draws at the truncated logical size. The transform is
// restored afterwards. Panics from Chart.Draw are not recovered.
func (b *Binding) Paint(dc *gg.Context, physicalWidth, physicalHeight int, env Environment) {
	if b.chart == nil {
		dc.Clear()
		return
	}

	s := b.Scale(env)
	dc.Push()
	defer dc.Pop()
	dc.Scale(s.Pixel, s.Pixel)

	lw := int(float64(physicalWidth) / s.Pixel)
	lh := int(float64(physicalHeight) / s.Pixel)
	b.chart.Draw(dc, lw, lh, s.Text)
}

// Scale resolves the scale of env with the binding's resolver, as Paint
// does.
func (b *Binding) Scale(env Environment) Scale {
	return b.resolver.Resolve(env)
}

// ConfigChanged reacts to a density or text-scale change of the host.
// Such notifications may arrive on another goroutine, so the redraw request
// is posted through d to run on the UI goroutine. A nil d requests the
// redraw directly.
func (b *Binding) ConfigChanged(d Dispatcher) {
	if d == nil {
		b.requestRedraw()
		return
	}
	d.Post(b.requestRedraw)
}

// Close disposes the subscription and forgets the chart without requesting
// a redraw. It is idempotent and optional: a Binding that is simply dropped
// releases its subscription once collected.
func (b *Binding) Close() {
	if b.sub != nil {
		b.sub.Dispose()
		b.sub = nil
	}
	b.chart = nil
}

func (b *Binding) requestRedraw() {
	if b.host != nil {
		b.host.RequestRedraw()
	}
}

func (b *Binding) assignTypeface(c Chart) {
	if b.typeface == nil {
		return
	}
	th, ok := c.(TypefaceHolder)
	if !ok || th.Typeface() != nil {
		return
	}
	if src := b.typeface(); src != nil {
		th.SetTypeface(src)
	}
}
