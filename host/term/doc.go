// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term hosts ggchart bindings in a terminal using tcell.
//
// Each cell shows two vertically stacked pixels through the upper half
// block character. The chart is rendered into a supersampled gg pixmap and
// filtered down, so anti-aliased shapes and text keep their weight.
//
//	screen, err := tcell.NewScreen()
//	if err != nil {
//	    return err
//	}
//	view, err := term.New(screen)
//	if err != nil {
//	    return err
//	}
//	defer view.Close()
//
//	view.SetChart(chart)
//	return view.Run(ctx)
//
// Run is the UI goroutine. Work from other goroutines goes through Post.
package term
