// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-bookmark-sync/models"
)

// Completion is the outcome of a queued sync. It is settled exactly once;
// later attempts are ignored.
type Completion struct {
	once sync.Once
	done chan struct{}
	err  error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// resolve settles the completion and reports whether this call did it.
func (c *Completion) resolve(err error) bool {
	resolved := false
	c.once.Do(func() {
		c.err = err
		close(c.done)
		resolved = true
	})
	return resolved
}

// Done is closed once the completion is settled.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Err returns the outcome, or nil while the completion is pending.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Settled reports whether the completion has an outcome.
func (c *Completion) Settled() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the completion is settled or ctx is done.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// queuedSync is a request together with the handle given to whoever
// queued it. A requeued request keeps its handle.
type queuedSync struct {
	request    models.SyncRequest
	completion *Completion

	// enable turns sync on once the request succeeded.
	enable bool
}

// syncQueue is a FIFO of queued syncs. It is not safe for concurrent use;
// the engine guards it together with the current sync.
type syncQueue struct {
	items []*queuedSync
}

func (q *syncQueue) push(item *queuedSync) {
	q.items = append(q.items, item)
}

// pushFront puts a request back at the head, ahead of everything queued
// after it.
func (q *syncQueue) pushFront(item *queuedSync) {
	q.items = append([]*queuedSync{item}, q.items...)
}

func (q *syncQueue) dequeueNext() (*queuedSync, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	item := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return item, true
}

// clear empties the queue and returns what was dropped.
func (q *syncQueue) clear() []*queuedSync {
	dropped := q.items
	q.items = nil
	return dropped
}

func (q *syncQueue) Len() int {
	return len(q.items)
}

// ids returns the queued request ids in order.
func (q *syncQueue) ids() []string {
	out := make([]string, len(q.items))
	for i, item := range q.items {
		out[i] = item.request.ID
	}
	return out
}
