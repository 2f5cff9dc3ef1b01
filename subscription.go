// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"runtime"
	"weak"
)

// Subscription is an active link between a chart's change signal and an
// observing view. The view is held through a weak pointer only.
//
// A Subscription is not safe for concurrent use; it lives on the UI goroutine
// together with the view that owns it.
type Subscription struct {
	signal  *Signal
	tok     Token
	cleanup runtime.Cleanup
	armed   bool
}

// ObserveInvalidate registers fn with the chart's change signal.
//
// owner is captured through a weak pointer, so the subscription never keeps
// it alive. When the signal fires and owner is still reachable, fn is called
// with it; once owner has been collected the notification is dropped and the
// registration removes itself from the signal.
//
// fn must not capture owner itself: it receives the resolved owner as its
// argument. Capturing it would route a strong reference through the chart
// and defeat the weak link.
//
// Subscribing does not notify fn.
func ObserveInvalidate[V any](chart Chart, owner *V, fn func(*V)) *Subscription {
	sig := chart.Invalidated()
	wp := weak.Make(owner)
	sub := &Subscription{signal: sig}

	var tok Token
	tok = sig.Subscribe(func() {
		v := wp.Value()
		if v == nil {
			Logger().Debug("ggchart: stale invalidation dropped", "token", uint64(tok))
			sig.Unsubscribe(tok)
			return
		}
		fn(v)
	})
	sub.tok = tok

	// The cleanup argument is the signal and token, never the subscription's
	// owner, so attaching it does not keep owner reachable.
	sub.cleanup = runtime.AddCleanup(owner, releaseToken, tokenRef{signal: sig, tok: tok})
	sub.armed = true

	Logger().Debug("ggchart: subscribed", "token", uint64(tok))
	return sub
}

type tokenRef struct {
	signal *Signal
	tok    Token
}

func releaseToken(r tokenRef) {
	if r.signal.Unsubscribe(r.tok) {
		Logger().Debug("ggchart: released subscription of collected view", "token", uint64(r.tok))
	}
}

// Dispose removes the registration from the chart's signal.
// It is idempotent and safe to call after the owner has been collected.
func (s *Subscription) Dispose() {
	if s == nil || s.signal == nil {
		return
	}
	if s.armed {
		s.cleanup.Stop()
		s.armed = false
	}
	s.signal.Unsubscribe(s.tok)
	Logger().Debug("ggchart: disposed", "token", uint64(s.tok))
	s.signal = nil
}

// Active reports whether Dispose has not been called yet.
func (s *Subscription) Active() bool {
	return s != nil && s.signal != nil
}
