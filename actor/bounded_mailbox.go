/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	gods "github.com/Workiva/go-datastructures/queue"

	gerrors "github.com/tochemey/postal/errors"
)

// BoundedMailbox is a bounded, blocking MPSC mailbox backed by a ring buffer.
//
// Characteristics
//   - Bounded capacity: the queue has a fixed size.
//   - Blocking semantics: Enqueue blocks when the mailbox is full until space
//     becomes available or the mailbox is disposed.
//   - Concurrency: safe for multiple producers (MPSC) and a single consumer.
//   - FIFO ordering: envelopes are dequeued in the order they were enqueued.
//
// Use this mailbox when you want strict, blocking backpressure with bounded
// capacity.
type BoundedMailbox[A Actor] struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Mailbox[Actor] = (*BoundedMailbox[Actor])(nil)

// NewBoundedMailbox creates a new bounded, blocking mailbox with the given
// capacity. It returns ErrInvalidCapacity when capacity is not positive.
func NewBoundedMailbox[A Actor](capacity int) (*BoundedMailbox[A], error) {
	if capacity <= 0 {
		return nil, gerrors.ErrInvalidCapacity
	}
	return &BoundedMailbox[A]{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}, nil
}

// Enqueue inserts an envelope into the mailbox.
//
// Semantics
//   - Blocks when the mailbox is full until space is available or the mailbox
//     is disposed.
//   - Returns an error when the mailbox has been disposed.
//
// Concurrency
// - Safe for concurrent producers.
func (mailbox *BoundedMailbox[A]) Enqueue(envelope Envelope[A]) error {
	return mailbox.underlying.Put(envelope)
}

// Dequeue removes and returns the next envelope from the mailbox.
// Returns nil when the mailbox is empty or disposed.
//
// Concurrency
// - Intended for a single consumer; behavior follows the underlying ring buffer.
func (mailbox *BoundedMailbox[A]) Dequeue() Envelope[A] {
	if mailbox.underlying.Len() > 0 {
		item, _ := mailbox.underlying.Get()
		if v, ok := item.(Envelope[A]); ok {
			return v
		}
	}
	return nil
}

// IsEmpty reports whether the mailbox currently has no envelopes.
// This check is a snapshot and may change immediately under concurrency.
func (mailbox *BoundedMailbox[A]) IsEmpty() bool {
	return mailbox.underlying.Len() == 0
}

// Len returns the current number of envelopes in the mailbox.
// The value is a snapshot and may change immediately after the call under
// concurrency.
func (mailbox *BoundedMailbox[A]) Len() int64 {
	return int64(mailbox.underlying.Len())
}

// Dispose releases resources held by the underlying ring buffer and unblocks
// any internal waiters maintained by it. Do not use the mailbox after calling
// Dispose.
func (mailbox *BoundedMailbox[A]) Dispose() {
	mailbox.underlying.Dispose()
}
