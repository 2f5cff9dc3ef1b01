// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"runtime"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// drawCall records one Chart.Draw invocation.
type drawCall struct {
	width, height int
	textScale     float64
	transform     gg.Matrix
}

// testChart is a minimal Chart that records draws.
type testChart struct {
	sig   Signal
	draws []drawCall
	face  *text.FontSource
	boom  string
}

func (c *testChart) Invalidated() *Signal { return &c.sig }

func (c *testChart) Draw(dc *gg.Context, width, height int, textScale float64) {
	if c.boom != "" {
		panic(c.boom)
	}
	c.draws = append(c.draws, drawCall{
		width:     width,
		height:    height,
		textScale: textScale,
		transform: dc.GetTransform(),
	})
}

// typedChart additionally implements TypefaceHolder.
type typedChart struct {
	testChart
}

func (c *typedChart) Typeface() *text.FontSource        { return c.face }
func (c *typedChart) SetTypeface(src *text.FontSource) { c.face = src }

// countingHost counts redraw requests.
type countingHost struct {
	n int
}

func (h *countingHost) RequestRedraw() { h.n++ }

// fixedEnv reports a pixel scale and, through FontScale, a text scale.
type fixedEnv struct {
	pixel float64
	text  float32
}

func (e fixedEnv) ScaleFactor() float64 { return e.pixel }
func (e fixedEnv) FontScale() float32   { return e.text }

// pixelOnlyEnv has no accessibility capability.
type pixelOnlyEnv float64

func (e pixelOnlyEnv) ScaleFactor() float64 { return float64(e) }

// queueDispatcher collects posted functions until run.
type queueDispatcher struct {
	queue []func()
}

func (d *queueDispatcher) Post(fn func()) { d.queue = append(d.queue, fn) }

func (d *queueDispatcher) run() {
	q := d.queue
	d.queue = nil
	for _, fn := range q {
		fn()
	}
}

// waitFor runs GC cycles until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached after repeated GC cycles")
		}
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
}
