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

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/postal/errors"
)

// Address is a strong handle to an actor's mailbox endpoint.
//
// A strong address participates in keeping the actor alive: every Address
// holds one unit of the actor's reference count, released exactly once via
// Release. The actor shuts down when the last strong address has been
// released or when Shutdown is called explicitly.
//
// An Address is safe for concurrent use by multiple goroutines.
type Address[A Actor] struct {
	pid      *pid[A]
	released atomic.Bool
}

// IsConnected reports whether the underlying actor's mailbox endpoint is
// still reachable. It never blocks and has no side effect.
func (x *Address[A]) IsConnected() bool {
	return !x.released.Load() && x.pid.isConnected()
}

// ID returns the unique identifier of the actor behind this address.
func (x *Address[A]) ID() string {
	return x.pid.id
}

// ProcessedCount returns the number of envelopes the actor has applied so
// far. Discarded envelopes are not counted. The value is a snapshot intended
// for diagnostics.
func (x *Address[A]) ProcessedCount() int64 {
	return x.pid.processedCount.Load()
}

// Clone returns a new strong address to the same actor, adding one unit to
// the actor's reference count. It fails with ErrAlreadyReleased when this
// address has been released or the actor is already fully released.
func (x *Address[A]) Clone() (*Address[A], error) {
	if x.released.Load() {
		return nil, gerrors.ErrAlreadyReleased
	}
	if err := x.pid.retain(); err != nil {
		return nil, err
	}
	return &Address[A]{pid: x.pid}, nil
}

// Release gives up this address's unit of the actor's reference count. The
// actor shuts down asynchronously once no strong address is left. Release is
// idempotent; only the first call takes effect.
func (x *Address[A]) Release() {
	if x.released.CompareAndSwap(false, true) {
		x.pid.release()
	}
}

// Downgrade returns a weak, non-owning address to the same actor. The weak
// address never extends the actor's lifetime and observes it becoming
// unreachable. Downgrading a released address is still valid: the resulting
// weak address simply reports disconnected.
func (x *Address[A]) Downgrade() *WeakAddress[A] {
	return &WeakAddress[A]{pid: x.pid}
}

// Shutdown stops the actor explicitly, regardless of how many strong
// addresses remain. The envelope currently being handled runs to completion;
// envelopes still queued afterwards are discarded and their pending replies
// fail with ErrDisconnected.
//
// Shutdown blocks until the actor has fully stopped or the context expires.
// It must not be called from within the actor's own handler; use
// Context.Stop there instead.
func (x *Address[A]) Shutdown(ctx context.Context) error {
	return x.pid.shutdown(ctx)
}

// WeakAddress is a non-owning handle to an actor's mailbox endpoint.
//
// It does not extend the actor's lifetime and transparently tolerates the
// actor having vanished by reporting disconnected. There is deliberately no
// Downgrade on a weak address: the invalid operation does not exist rather
// than failing at runtime.
type WeakAddress[A Actor] struct {
	pid *pid[A]
}

// IsConnected reports whether the underlying actor is still reachable. It
// returns false once the actor has no remaining strong owners, even though
// the weak address itself is still held.
func (x *WeakAddress[A]) IsConnected() bool {
	return x.pid.isConnected()
}

// ID returns the unique identifier of the actor behind this address.
func (x *WeakAddress[A]) ID() string {
	return x.pid.id
}
