// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package offscreen

import "github.com/gogpu/ggchart"

// Option configures a View during creation.
type Option func(*options)

type options struct {
	scale          float64
	fontScale      float32
	loop           *Loop
	bindingOptions []ggchart.BindingOption
}

func defaultOptions() options {
	return options{
		scale:     1,
		fontScale: 1,
	}
}

// WithScaleFactor sets the display density (physical pixels per logical
// point). Values the resolver cannot use fall back to 1 at paint time.
func WithScaleFactor(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithFontScale sets the accessibility text scale.
func WithFontScale(scale float32) Option {
	return func(o *options) {
		o.fontScale = scale
	}
}

// WithLoop routes configuration changes through l, which must be the loop
// that drives the view.
func WithLoop(l *Loop) Option {
	return func(o *options) {
		o.loop = l
	}
}

// WithBindingOptions passes options to the view's binding.
func WithBindingOptions(opts ...ggchart.BindingOption) Option {
	return func(o *options) {
		o.bindingOptions = append(o.bindingOptions, opts...)
	}
}
