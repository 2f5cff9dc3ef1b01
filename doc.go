// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggchart binds chart models to gg drawing surfaces hosted by
// different environments (offscreen images, gogpu windows, terminals).
//
// # Overview
//
// A chart model owns its content and exposes two things: a change [Signal]
// and a Draw method that renders into a [gg.Context] at a logical size.
// A host view owns one [Binding]. The binding
//
//   - observes the chart through a weak [Subscription], so a chart that
//     outlives its view never keeps the view alive;
//   - requests exactly one redraw from the host per change notification;
//   - resolves the host's pixel and text scale on every paint and hands the
//     chart its logical size.
//
// # Quick Start
//
//	view, _ := offscreen.New(1600, 1200, offscreen.WithScaleFactor(2))
//	view.SetChart(myChart)   // binds and requests the first frame
//	view.Frame()             // paints: myChart.Draw(dc, 800, 600, 1)
//	myChart.Invalidated().Emit()
//	view.Frame()             // repaints once
//
// # Hosts
//
// Each environment supplies one small adapter implementing [Redrawer] and
// [Environment]; see host/offscreen, host/term and integration/ggchartview.
// Any gpucontext.WindowProvider is already both.
//
// # Threading
//
// Bindings, subscriptions and paints live on the host's UI goroutine and
// take no locks. Configuration changes delivered on other goroutines are
// forwarded with [Binding.ConfigChanged] through the host's [Dispatcher].
package ggchart
