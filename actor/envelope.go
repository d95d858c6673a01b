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
	"github.com/tochemey/postal/future"
)

// Envelope is the type-erased carrier of exactly one message occurrence,
// ready for queuing on a mailbox and later dispatch by the actor's run loop.
//
// The message type and its result type are fixed by the concrete
// implementation and do not appear in the interface: Envelope is generic only
// over the actor type, which is the erasure point that lets a single mailbox
// carry every kind of message the actor can receive. The price is one heap
// allocation per message occurrence.
//
// Two implementations exist: a returning envelope that owns the message plus
// the sending half of a one-shot reply channel, and a non-returning envelope
// that owns the message alone. A message occurrence is wrapped in exactly one
// of the two, never both.
type Envelope[A Actor] interface {
	// Handle applies the carried message to the actor by invoking the
	// relevant Handler capability, routing the typed result through the
	// reply channel when one is attached.
	//
	// The run loop invokes Handle at most once per envelope and runs it to
	// completion before dequeuing the actor's next envelope. Handle itself
	// cannot fail; any failure belongs to the handler's own result type and
	// is opaque to this layer.
	Handle(ctx *Context, act A)

	// discard completes a pending reply, when one is attached, with the given
	// error. The run loop calls it instead of Handle for every envelope still
	// queued when the actor stops, so that no Ask future is left hanging.
	discard(err error)
}

// returningEnvelope carries a message together with the sending half of its
// one-shot reply channel. Constructed by Ask.
type returningEnvelope[A Handler[M, R], M any, R any] struct {
	message    M
	completion future.Completable[R]
}

// newReturningEnvelope wraps the given message and returns the envelope
// together with the paired receiving half, so the caller retains a way to
// await the result.
func newReturningEnvelope[A Handler[M, R], M any, R any](message M) (Envelope[A], future.Future[R]) {
	completion := future.NewCompletable[R]()
	envelope := &returningEnvelope[A, M, R]{
		message:    message,
		completion: completion,
	}
	return envelope, completion.Future()
}

// Handle invokes the handler capability with the owned message and forwards
// the produced result through the reply channel. When the receiving half has
// been abandoned the completion is silently absorbed: a caller that lost
// interest is never an error for the sender.
func (x *returningEnvelope[A, M, R]) Handle(ctx *Context, act A) {
	x.completion.Success(act.Handle(ctx, x.message))
}

func (x *returningEnvelope[A, M, R]) discard(err error) {
	x.completion.Failure(err)
}

// nonReturningEnvelope carries a message alone. Constructed by Tell: the
// handler still computes its result, but nothing observes it.
type nonReturningEnvelope[A Handler[M, R], M any, R any] struct {
	message M
}

func newNonReturningEnvelope[A Handler[M, R], M any, R any](message M) Envelope[A] {
	return &nonReturningEnvelope[A, M, R]{message: message}
}

// Handle invokes the handler capability and discards the produced result.
func (x *nonReturningEnvelope[A, M, R]) Handle(ctx *Context, act A) {
	_ = act.Handle(ctx, x.message)
}

func (x *nonReturningEnvelope[A, M, R]) discard(err error) {
	_ = err
}
