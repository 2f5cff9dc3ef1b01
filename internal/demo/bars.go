// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package demo provides a small bar chart used by the command line tool and
// host tests. It is not a charting library.
package demo

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggchart"
)

// Entry is one bar.
type Entry struct {
	Label string
	Value float64
	Color gg.RGBA
}

// Bars is a bar chart model.
type Bars struct {
	sig      ggchart.Signal
	entries  []Entry
	face     *text.FontSource
	bg       gg.RGBA
	margin   float64
	fontSize float64
}

// NewBars creates a bar chart with the given entries.
func NewBars(entries ...Entry) *Bars {
	return &Bars{
		entries:  append([]Entry(nil), entries...),
		bg:       gg.RGB(1, 1, 1),
		margin:   20,
		fontSize: 12,
	}
}

// Sample returns a chart with a fixed data set.
func Sample() *Bars {
	return NewBars(
		Entry{Label: "Jan", Value: 200, Color: Palette[0]},
		Entry{Label: "Feb", Value: 400, Color: Palette[1]},
		Entry{Label: "Mar", Value: 100, Color: Palette[2]},
		Entry{Label: "Apr", Value: 600, Color: Palette[3]},
		Entry{Label: "May", Value: 350, Color: Palette[4]},
	)
}

// Invalidated returns the chart's change signal.
func (b *Bars) Invalidated() *ggchart.Signal {
	return &b.sig
}

// Entries returns a copy of the entries.
func (b *Bars) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// SetEntries replaces the data and notifies observers.
func (b *Bars) SetEntries(entries []Entry) {
	b.entries = append([]Entry(nil), entries...)
	b.sig.Emit()
}

// SetValue changes the value of entry i and notifies observers.
func (b *Bars) SetValue(i int, v float64) {
	if i < 0 || i >= len(b.entries) {
		return
	}
	b.entries[i].Value = v
	b.sig.Emit()
}

// SetBackground changes the background colour and notifies observers.
func (b *Bars) SetBackground(c gg.RGBA) {
	b.bg = c
	b.sig.Emit()
}

// Typeface returns the label typeface, or nil.
func (b *Bars) Typeface() *text.FontSource {
	return b.face
}

// SetTypeface changes the label typeface and notifies observers.
func (b *Bars) SetTypeface(src *text.FontSource) {
	b.face = src
	b.sig.Emit()
}

// Draw renders the chart at width x height logical units.
func (b *Bars) Draw(dc *gg.Context, width, height int, textScale float64) {
	w, h := float64(width), float64(height)
	dc.SetColor(b.bg)
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()

	if len(b.entries) == 0 || w <= 2*b.margin || h <= 2*b.margin {
		return
	}

	labelH := 0.0
	if b.face != nil {
		labelH = b.fontSize * textScale * 1.5
		dc.SetFont(b.face.Face(b.fontSize * textScale))
	}

	maxV := 0.0
	for _, e := range b.entries {
		maxV = math.Max(maxV, e.Value)
	}
	if maxV <= 0 {
		maxV = 1
	}

	plotH := h - 2*b.margin - labelH
	slot := (w - 2*b.margin) / float64(len(b.entries))
	barW := slot * 0.7
	base := h - b.margin - labelH

	for i, e := range b.entries {
		x := b.margin + float64(i)*slot + (slot-barW)/2
		bh := math.Max(0, e.Value) / maxV * plotH
		dc.SetColor(e.Color)
		dc.DrawRectangle(x, base-bh, barW, bh)
		_ = dc.Fill()

		if b.face != nil && e.Label != "" {
			dc.SetRGB(0.2, 0.2, 0.2)
			dc.DrawStringAnchored(e.Label, x+barW/2, base+labelH/2, 0.5, 0.5)
		}
	}
}
