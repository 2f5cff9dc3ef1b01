// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package offscreen hosts ggchart bindings on an in-memory gg pixmap.
//
// It is the host of choice for servers, tests and command line rendering:
// the display density and text scale are plain settings instead of
// properties of a monitor, and redraw requests are collected until the
// caller asks for a Frame.
//
//	view, err := offscreen.New(1600, 1200, offscreen.WithScaleFactor(2))
//	if err != nil {
//	    return err
//	}
//	defer view.Close()
//
//	view.SetChart(chart)
//	if _, err := view.Frame(); err != nil {
//	    return err
//	}
//	return view.SavePNG("chart.png")
//
// A Loop provides the UI goroutine for programs that change the chart or
// the density from elsewhere: post the change, the loop applies it and
// paints attached views.
package offscreen
