// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "sync"

// Token identifies one registration on a Signal.
// The zero Token never identifies a live registration.
type Token uint64

// Signal is a zero-argument change notification.
//
// Chart models own one Signal and call Emit whenever their visual content
// changes. Views never talk to a Signal directly; they go through
// ObserveInvalidate, which keeps the registration from pinning the view.
//
// The zero value is ready to use. A Signal must not be copied after first use.
type Signal struct {
	mu       sync.Mutex
	next     Token
	handlers []registration
}

type registration struct {
	tok Token
	fn  func()
}

// Subscribe registers fn and returns a token for Unsubscribe.
func (s *Signal) Subscribe(fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.handlers = append(s.handlers, registration{tok: s.next, fn: fn})
	return s.next
}

// Unsubscribe removes the registration identified by tok.
// It reports whether a registration was removed; unknown or already
// removed tokens are ignored.
func (s *Signal) Unsubscribe(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.handlers {
		if r.tok == tok {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Emit calls every handler registered at the time of the call, in
// registration order. Handlers run outside the lock and may subscribe or
// unsubscribe; a handler removed by an earlier handler in the same Emit
// is skipped.
func (s *Signal) Emit() {
	s.mu.Lock()
	snapshot := make([]registration, len(s.handlers))
	copy(snapshot, s.handlers)
	s.mu.Unlock()

	for _, r := range snapshot {
		if !s.live(r.tok) {
			continue
		}
		r.fn()
	}
}

// Len returns the number of live registrations.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func (s *Signal) live(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.handlers {
		if r.tok == tok {
			return true
		}
	}
	return false
}
