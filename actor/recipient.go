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
	gerrors "github.com/tochemey/postal/errors"
	"github.com/tochemey/postal/future"
)

// Recipient erases the concrete actor type behind the capability "this
// object can accept messages of type M and reply with R". It is the
// counterpart of Envelope: where Envelope erases the message type to get
// heterogeneous messages through one mailbox, Recipient erases the actor
// type so that callers can hold references to differently-typed actors that
// all accept the same message type.
//
// A Recipient may be backed by a strong or a weak address; the two behave
// identically except for lifetime participation. Weak-backed recipients
// transparently tolerate the actor having vanished by reporting
// false/ErrDisconnected.
type Recipient[M any, R any] interface {
	// IsConnected reports whether the underlying actor's mailbox endpoint is
	// still reachable. It never blocks and has no side effect.
	IsConnected() bool

	// Tell sends a message without waiting for its result. It fails with
	// ErrDisconnected when the actor is no longer reachable.
	Tell(message M) error

	// Ask sends a message and returns a future resolving to the handler's
	// typed result, or to ErrDisconnected when the actor stops before the
	// message is handled.
	Ask(message M) future.Future[R]
}

// StrongRecipient is a Recipient backed by a strong address. Besides
// participating in the actor's lifetime it can be downgraded to a weak-backed
// Recipient. Weak-backed recipients have no Downgrade at all: downgrading an
// already-weak reference is unrepresentable rather than a runtime error.
type StrongRecipient[M any, R any] interface {
	Recipient[M, R]

	// Downgrade returns a Recipient backed by a weak, non-owning reference to
	// the same actor.
	Downgrade() Recipient[M, R]
}

// RecipientOf erases the actor type of the given strong address behind the
// per-message-type Recipient capability. The message and result types are
// spelled at the call site; the actor type is inferred:
//
//	pinger := actor.RecipientOf[Ping, uint32](addr)
func RecipientOf[M any, R any, A Handler[M, R]](addr *Address[A]) StrongRecipient[M, R] {
	return &strongRecipient[M, R, A]{addr: addr}
}

// WeakRecipientOf erases the actor type of the given weak address behind the
// per-message-type Recipient capability.
func WeakRecipientOf[M any, R any, A Handler[M, R]](addr *WeakAddress[A]) Recipient[M, R] {
	return &weakRecipient[M, R, A]{addr: addr}
}

// strongRecipient is the strong-backed Recipient implementation.
type strongRecipient[M any, R any, A Handler[M, R]] struct {
	addr *Address[A]
}

var _ StrongRecipient[int, int] = (*strongRecipient[int, int, Handler[int, int]])(nil)

func (x *strongRecipient[M, R, A]) IsConnected() bool {
	return x.addr.IsConnected()
}

func (x *strongRecipient[M, R, A]) Tell(message M) error {
	return Tell[R](x.addr, message)
}

func (x *strongRecipient[M, R, A]) Ask(message M) future.Future[R] {
	return Ask[R](x.addr, message)
}

func (x *strongRecipient[M, R, A]) Downgrade() Recipient[M, R] {
	return &weakRecipient[M, R, A]{addr: x.addr.Downgrade()}
}

// weakRecipient is the weak-backed Recipient implementation.
type weakRecipient[M any, R any, A Handler[M, R]] struct {
	addr *WeakAddress[A]
}

var _ Recipient[int, int] = (*weakRecipient[int, int, Handler[int, int]])(nil)

func (x *weakRecipient[M, R, A]) IsConnected() bool {
	return x.addr.IsConnected()
}

func (x *weakRecipient[M, R, A]) Tell(message M) error {
	if !x.addr.IsConnected() {
		return gerrors.ErrDisconnected
	}
	return x.addr.pid.doReceive(newNonReturningEnvelope[A, M, R](message))
}

func (x *weakRecipient[M, R, A]) Ask(message M) future.Future[R] {
	envelope, fut := newReturningEnvelope[A, M, R](message)
	if !x.addr.IsConnected() {
		envelope.discard(gerrors.ErrDisconnected)
		return fut
	}
	if err := x.addr.pid.doReceive(envelope); err != nil {
		envelope.discard(err)
	}
	return fut
}
