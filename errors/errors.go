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

// Package errors defines the sentinel errors surfaced by the dispatch layer.
package errors

import "errors"

var (
	// ErrDisconnected indicates that the target actor's mailbox endpoint is no
	// longer reachable: the actor has been stopped, all of its strong addresses
	// have been released, or it never started. This is the only error kind the
	// dispatch layer itself produces; callers must treat it as a normal,
	// expected outcome of actor lifecycle rather than an exceptional crash.
	// Handler-internal failures are opaque to this layer and belong to the
	// result type the handler declares.
	ErrDisconnected = errors.New("actor is not reachable")

	// ErrInitFailure is returned by Spawn when the actor's PreStart hook fails.
	// The actor never starts and no address is handed out.
	ErrInitFailure = errors.New("preStart failed")

	// ErrInvalidCapacity is returned when a bounded mailbox is created with a
	// capacity of zero or less.
	ErrInvalidCapacity = errors.New("mailbox capacity must be positive")

	// ErrAlreadyReleased indicates that Release or Clone was called on a strong
	// address whose reference has already been given up. A released address no
	// longer participates in the actor's lifetime and cannot be revived.
	ErrAlreadyReleased = errors.New("address already released")
)
