// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import "github.com/gogpu/ggchart"

// Option configures a View during creation.
type Option func(*options)

type options struct {
	cellW, cellH   int
	scale          float64
	fontScale      float32
	bindingOptions []ggchart.BindingOption
}

func defaultOptions() options {
	return options{
		cellW:     DefaultCellWidth,
		cellH:     DefaultCellHeight,
		scale:     1,
		fontScale: 1,
	}
}

// WithCellSize sets the supersampled size of one terminal cell.
// Non-positive values keep the defaults.
func WithCellSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.cellW = width
		}
		if height > 0 {
			o.cellH = height
		}
	}
}

// WithScaleFactor sets the density of the drawing pixmap.
func WithScaleFactor(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithFontScale sets the text scale.
func WithFontScale(scale float32) Option {
	return func(o *options) {
		o.fontScale = scale
	}
}

// WithBindingOptions passes options to the view's binding.
func WithBindingOptions(opts ...ggchart.BindingOption) Option {
	return func(o *options) {
		o.bindingOptions = append(o.bindingOptions, opts...)
	}
}
