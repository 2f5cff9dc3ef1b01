// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Chart is the contract a chart model exposes to the binding layer.
//
// Implementations are expected to be pointer types: a Binding compares
// models by interface equality to detect reassignment of the same model.
// Models of an uncomparable type are compared by their Invalidated signal.
type Chart interface {
	// Invalidated returns the model's change signal. It must return the
	// same Signal for the lifetime of the model.
	Invalidated() *Signal

	// Draw renders the chart into dc using logical coordinates.
	// width and height may be zero. textScale multiplies font sizes.
	// Draw reports no errors; a panic propagates to the host's paint loop.
	Draw(dc *gg.Context, width, height int, textScale float64)
}

// TypefaceHolder is implemented by charts that render text with a
// configurable typeface. A binding built WithDefaultTypeface assigns one
// when the chart has none.
type TypefaceHolder interface {
	Typeface() *text.FontSource
	SetTypeface(src *text.FontSource)
}
