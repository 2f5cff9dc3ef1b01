// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package offscreen

import (
	"context"
	"sync"
)

// Loop is a minimal UI event loop: functions posted from any goroutine run
// in order on the goroutine that calls Run or Drain.
//
// Loop implements ggchart.Dispatcher.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	frames []frameSource
}

type frameSource interface {
	Frame() (bool, error)
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn to run on the loop goroutine. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Attach makes Run and Drain paint v after each batch of posted work.
// Call it from the loop goroutine, or before Run starts.
func (l *Loop) Attach(v *View) {
	l.frames = append(l.frames, v)
}

// Drain runs everything queued so far, including work queued by the
// functions it runs, then paints attached views with pending redraws.
// It returns the number of functions run and the first paint error.
func (l *Loop) Drain() (int, error) {
	n := 0
	for {
		l.mu.Lock()
		q := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(q) == 0 {
			break
		}
		for _, fn := range q {
			fn()
			n++
		}
	}

	var firstErr error
	for _, f := range l.frames {
		if _, err := f.Frame(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return n, firstErr
}

// Run drains the loop every time work is posted until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if _, err := l.Drain(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}
