// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggchartview hosts ggchart bindings in gogpu GPU-accelerated
// windows.
//
// A View paints the bound chart into a ggcanvas.Canvas at the physical
// resolution of the window and draws the canvas texture on each frame.
// The data flow is:
//
//	Chart.Draw (logical units) -> gg.Context (physical pixels) -> GPU Texture -> Window
//
// # Usage
//
//	view, err := ggchartview.New(app.GPUContextProvider(), app)
//	if err != nil {
//	    return err
//	}
//	defer view.Close()
//
//	view.SetChart(chart)
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = view.Render(dc.AsTextureDrawer())
//	})
//
// The window reports the density through gpucontext.WindowProvider and,
// when it also implements gpucontext.PlatformProvider, the user's text
// scale. Call Resize after the window size changes and ScaleChanged when
// the density or text scale changes.
//
// # Thread Safety
//
// A View is NOT safe for concurrent use. ScaleChanged accepts a Dispatcher
// for notifications that arrive off the UI goroutine.
package ggchartview
