// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "math"

// Environment is the host capability the scale resolver queries.
// Every gpucontext.WindowProvider satisfies it.
type Environment interface {
	// ScaleFactor returns the ratio of physical to logical pixels.
	ScaleFactor() float64
}

// fontScaler is the optional accessibility capability of an Environment.
// gpucontext.PlatformProvider satisfies it.
type fontScaler interface {
	FontScale() float32
}

// Scale holds the factors used to map logical drawing units to device
// pixels (Pixel) and to adjust font sizes for accessibility settings (Text).
type Scale struct {
	Pixel float64
	Text  float64
}

// Identity is the scale of an environment that reports nothing.
var Identity = Scale{Pixel: 1, Text: 1}

// ScaleResolver turns a host environment into scale factors.
type ScaleResolver interface {
	Resolve(env Environment) Scale
}

// ScaleResolverFunc adapts a function to ScaleResolver.
type ScaleResolverFunc func(env Environment) Scale

// Resolve calls f(env).
func (f ScaleResolverFunc) Resolve(env Environment) Scale { return f(env) }

// DefaultResolver resolves scales with ResolveScale.
var DefaultResolver ScaleResolver = ScaleResolverFunc(ResolveScale)

// ResolveScale queries env for its current pixel and text scale.
//
// Nothing is cached: density and text size can change at runtime (a window
// dragged to another display, a changed accessibility setting), so every
// paint asks again. Missing or unusable values resolve to 1. The pixel
// scale is never below 1.
func ResolveScale(env Environment) Scale {
	if env == nil {
		return Identity
	}
	s := Scale{
		Pixel: normalizePixel(env.ScaleFactor()),
		Text:  1,
	}
	if fs, ok := env.(fontScaler); ok {
		s.Text = normalizeText(float64(fs.FontScale()))
	}
	return s
}

func normalizePixel(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 1
	}
	return v
}

func normalizeText(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1
	}
	return v
}

// TextScaleFromDensity derives a text scale from a pair of display
// densities, as reported by platforms that publish a font-adjusted density
// next to the plain one.
func TextScaleFromDensity(density, scaledDensity float64) float64 {
	if density <= 0 {
		return 1
	}
	return normalizeText(scaledDensity / density)
}

// BodyPointSize is the default body text size on platforms that publish a
// preferred body font size instead of a multiplier.
const BodyPointSize = 17.0

// TextScaleFromPointSize derives a text scale from the preferred body font
// size and the platform's default size for it (BodyPointSize when base <= 0).
func TextScaleFromPointSize(preferred, base float64) float64 {
	if base <= 0 {
		base = BodyPointSize
	}
	return normalizeText(preferred / base)
}
