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

// Mailbox defines the contract for an actor's message queue.
//
// Concurrency and ordering
//   - Implementations MUST be thread-safe for multiple concurrent producers
//     calling Enqueue.
//   - The actor run loop consumes from a single goroutine, so implementations
//     SHOULD optimize Dequeue for a single consumer (MPSC).
//   - Per-producer FIFO ordering is the default expectation: envelopes
//     enqueued sequentially by one producer are dequeued in that order.
//
// Non-blocking behavior
//   - Enqueue SHOULD be non-blocking. Bounded implementations MAY block or
//     return an error when full; whichever they do MUST be documented.
//   - Dequeue SHOULD be non-blocking and return nil when the mailbox is
//     empty. The run loop polls Dequeue in a loop.
//
// Resource management
//   - Dispose MUST release any resources and unblock any internal waiters
//     used by the implementation. After Dispose, Enqueue SHOULD fail and
//     Dequeue SHOULD return nil.
//
// Memory visibility
//   - Implementations MUST ensure that writes performed by producers before
//     Enqueue are visible to the consumer after Dequeue.
type Mailbox[A Actor] interface {
	// Enqueue pushes an envelope into the mailbox.
	//
	// Semantics
	// - Bounded queues MUST reject or block when full, as documented.
	// - Unbounded queues SHOULD never return an error.
	// - SHOULD be safe for concurrent calls by multiple producers.
	Enqueue(envelope Envelope[A]) error
	// Dequeue fetches an envelope from the mailbox.
	//
	// Semantics
	// - SHOULD return nil when the mailbox is empty (non-blocking).
	// - Intended to be called by a single consumer goroutine.
	Dequeue() Envelope[A]
	// IsEmpty reports whether the mailbox currently has no envelopes.
	// This is a best-effort snapshot under concurrency.
	IsEmpty() bool
	// Len returns a snapshot of the number of envelopes in the mailbox.
	// Implementations MAY return an approximate value under concurrency.
	Len() int64
	// Dispose releases any resources and unblocks internal waiters used by
	// the implementation. The mailbox MUST NOT be used after Dispose returns.
	Dispose()
}
