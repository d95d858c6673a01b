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

// Package actor implements a typed, in-process message-dispatch core: the
// mechanism by which statically-typed messages sent to an actor are erased
// into a single uniform envelope representation, queued on the actor's
// mailbox, and later applied to the actor's typed state by its run loop.
//
// Type associations are carried entirely by generics. A message type and its
// declared result type are bound together by the Handler capability; the
// Envelope interface re-exposes that pair behind a single method generic only
// over the actor type, which is what lets one mailbox carry every kind of
// message an actor can receive.
package actor

import (
	"context"
)

// Actor defines the core contract for a unit of encapsulated, exclusively
// owned mutable state processed by exactly one run loop at a time.
//
// Actors communicate exclusively via message passing. Each actor has its own
// mailbox and processes messages sequentially, which gives handler code
// data-race-free access to the actor's state without locks.
//
// The message-handling capability itself is declared separately through the
// Handler interface so that the message and result types stay statically
// typed per call site.
type Actor interface {
	// PreStart is invoked once before the actor begins processing any messages.
	//
	// Use this hook to perform one-time setup operations such as initializing
	// internal state or establishing connections to external services.
	// If an error is returned, the actor fails to start and no address is
	// handed out.
	PreStart(ctx context.Context) error

	// PostStop is invoked after the actor has processed its final message and
	// is about to terminate.
	//
	// Use this hook to perform cleanup tasks such as flushing buffers or
	// closing connections. It is invoked exactly once per actor.
	PostStop(ctx context.Context) error
}

// Handler describes the capability of actor type A to process messages of
// type M, producing a value of M's declared result type R.
//
// Actor authors implement the capability by giving their actor type a Handle
// method with the concrete message and result types:
//
//	type Counter struct{ count uint32 }
//
//	func (c *Counter) Handle(ctx *actor.Context, _ Ping) uint32 {
//	    c.count++
//	    return c.count
//	}
//
// Handle runs on the actor's run loop goroutine with exclusive access to the
// actor's state; it may block freely. Implementing this single method is
// sufficient to receive correctly-typed, exclusively-owned messages and to
// have results routed back to callers transparently.
//
// Because Go resolves methods by name, one actor type carries the capability
// for exactly one message type; actors that accept several kinds of messages
// declare them as variants of a single message sum type.
type Handler[M any, R any] interface {
	Actor

	// Handle consumes one message occurrence and produces its declared result.
	Handle(ctx *Context, msg M) R
}
