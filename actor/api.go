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
	"context"

	gerrors "github.com/tochemey/postal/errors"
	"github.com/tochemey/postal/future"
)

// Tell sends a message to the actor behind the given address without waiting
// for its result: the handler still computes the result, but nothing observes
// it. Tell never blocks on the handler; its only side effect is one enqueue.
//
// The result type parameter cannot be inferred from the arguments and must be
// spelled at the call site:
//
//	err := actor.Tell[uint32](addr, Ping{})
//
// Tell fails with ErrDisconnected when the actor is no longer reachable.
func Tell[R any, M any, A Handler[M, R]](addr *Address[A], message M) error {
	if !addr.IsConnected() {
		return gerrors.ErrDisconnected
	}
	return addr.pid.doReceive(newNonReturningEnvelope[A, M, R](message))
}

// Ask sends a message to the actor behind the given address and returns a
// future that resolves to the handler's typed result.
//
// Ask itself never blocks: enqueuing is immediate and awaiting the returned
// future is the caller's suspension point. The future resolves exactly once,
// either to the handler's result or to ErrDisconnected when the actor stops
// before the message is handled. Abandoning the future is always safe; the
// reply is then discarded silently.
//
// As with Tell, the result type parameter is spelled at the call site:
//
//	count, err := actor.Ask[uint32](addr, Ping{}).Await(ctx)
func Ask[R any, M any, A Handler[M, R]](addr *Address[A], message M) future.Future[R] {
	envelope, fut := newReturningEnvelope[A, M, R](message)
	if !addr.IsConnected() {
		envelope.discard(gerrors.ErrDisconnected)
		return fut
	}
	if err := addr.pid.doReceive(envelope); err != nil {
		envelope.discard(err)
	}
	return fut
}

// AskSync is a convenience wrapper around Ask that awaits the result in
// place. It blocks until the handler's result arrives, the actor turns out to
// be disconnected, or the context is canceled.
func AskSync[R any, M any, A Handler[M, R]](ctx context.Context, addr *Address[A], message M) (R, error) {
	return Ask[R](addr, message).Await(ctx)
}
