// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestBarsDraw(t *testing.T) {
	dc := gg.NewContext(200, 100)
	defer func() { _ = dc.Close() }()

	b := NewBars(Entry{Label: "a", Value: 1, Color: gg.RGB(1, 0, 0)})
	b.Draw(dc, 200, 100, 1)

	pm := dc.ResizeTarget()
	if px := pm.GetPixel(2, 2); px.A < 0.99 || px.R < 0.99 || px.G < 0.99 {
		t.Errorf("corner pixel = %+v, want opaque white background", px)
	}
	// The single bar spans the plot height and is centred.
	if px := pm.GetPixel(100, 60); px.R < 0.9 || px.G > 0.1 {
		t.Errorf("bar pixel = %+v, want red", px)
	}
}

func TestBarsDrawDegenerateSizes(t *testing.T) {
	dc := gg.NewContext(10, 10)
	defer func() { _ = dc.Close() }()

	b := Sample()
	for _, size := range [][2]int{{0, 0}, {10, 0}, {0, 10}, {10, 10}} {
		b.Draw(dc, size[0], size[1], 1)
	}
	NewBars().Draw(dc, 10, 10, 1)
}

func TestBarsNotifyOnChange(t *testing.T) {
	b := Sample()
	calls := 0
	b.Invalidated().Subscribe(func() { calls++ })

	b.SetValue(0, 42)
	b.SetValue(99, 1) // out of range: no change, no notification
	b.SetEntries(b.Entries()[:2])
	b.SetBackground(gg.RGB(0, 0, 0))

	if calls != 3 {
		t.Errorf("notifications = %d, want 3", calls)
	}
	if got := b.Entries()[0].Value; got != 42 {
		t.Errorf("Value = %v, want 42", got)
	}
}
