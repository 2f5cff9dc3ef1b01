// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "github.com/gogpu/gg/text"

// BindingOption configures a Binding during creation.
//
// Example:
//
//	b := ggchart.NewBinding(view,
//	    ggchart.WithDefaultTypeface(ggchart.DefaultTypeface),
//	)
type BindingOption func(*bindingOptions)

type bindingOptions struct {
	resolver ScaleResolver
	typeface func() *text.FontSource
}

func defaultBindingOptions() bindingOptions {
	return bindingOptions{
		resolver: DefaultResolver,
	}
}

// WithResolver replaces the scale resolver used on every paint.
// A nil resolver keeps DefaultResolver.
func WithResolver(r ScaleResolver) BindingOption {
	return func(o *bindingOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithDefaultTypeface makes the binding assign a typeface to charts that
// implement TypefaceHolder and have none when they are bound.
// fn is called lazily, at most once per bound chart.
func WithDefaultTypeface(fn func() *text.FontSource) BindingOption {
	return func(o *bindingOptions) {
		o.typeface = fn
	}
}
