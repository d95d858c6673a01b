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

// Package future provides a one-shot, single-producer single-consumer
// value container used to route a handler's typed result back to the caller
// that asked for it.
package future

import (
	"context"
	"sync"
)

// Future represents a value of type R which may or may not currently be
// available, but will be available at some point, or an error if that value
// could not be produced.
//
// A Future is completed exactly once through its paired Completable. The
// consuming side may abandon the Future at any time without notifying the
// producer: a completion that arrives after the consumer lost interest is
// silently absorbed and never an error for the producer.
type Future[R any] interface {
	// Await blocks until the Future is completed or the context is canceled
	// and returns either a result or an error.
	Await(context.Context) (R, error)
}

// Completable is the writable, single-assignment side of a Future.
//
// Exactly one of Success or Failure takes effect; any later completion is a
// no-op. Completing never blocks, whether or not anyone is awaiting the
// paired Future.
type Completable[R any] interface {
	// Success completes the underlying Future with a value.
	Success(R)

	// Failure fails the underlying Future with an error.
	Failure(error)

	// Future returns the underlying Future.
	Future() Future[R]
}

// New creates a Future that is completed by the given task, executed
// asynchronously in its own goroutine.
func New[R any](task func() (R, error)) Future[R] {
	comp := NewCompletable[R]()
	go func() {
		result, err := task()
		if err == nil {
			comp.Success(result)
		} else {
			comp.Failure(err)
		}
	}()
	return comp.Future()
}

// NewCompletable creates a Completable together with its Future.
func NewCompletable[R any]() Completable[R] {
	return &completer[R]{
		future: newFuture[R](),
	}
}

// outcome carries a completed value or error through the done channel.
type outcome[R any] struct {
	value R
	err   error
}

// future implements the Future interface.
type future[R any] struct {
	acceptOnce   sync.Once
	completeOnce sync.Once
	done         chan outcome[R]
	value        R
	err          error
}

// Verify future satisfies the Future interface.
var _ Future[int] = (*future[int])(nil)

// newFuture returns a new future.
func newFuture[R any]() *future[R] {
	return &future[R]{
		// the buffer slot lets a producer complete without a consumer present
		done: make(chan outcome[R], 1),
	}
}

// wait blocks once, until the result is available or until the context is
// canceled. Later calls return the recorded outcome without blocking.
func (x *future[R]) wait(ctx context.Context) {
	x.acceptOnce.Do(func() {
		select {
		case result := <-x.done:
			x.value = result.value
			x.err = result.err
		case <-ctx.Done():
			x.err = ctx.Err()
		}
	})
}

// Await blocks until the Future is completed or context is canceled and
// returns either a result or an error.
func (x *future[R]) Await(ctx context.Context) (R, error) {
	x.wait(ctx)
	return x.value, x.err
}

// complete completes the Future with either a value or an error.
func (x *future[R]) complete(value R, err error) {
	x.completeOnce.Do(func() {
		x.done <- outcome[R]{value: value, err: err}
	})
}

// completer implements the Completable interface.
type completer[R any] struct {
	future *future[R]
}

// Verify completer satisfies the Completable interface.
var _ Completable[int] = (*completer[int])(nil)

// Success completes the underlying Future with a value. Only the first
// completion wins; the rest are discarded.
func (x *completer[R]) Success(value R) {
	x.future.complete(value, nil)
}

// Failure fails the underlying Future with an error. Only the first
// completion wins; the rest are discarded.
func (x *completer[R]) Failure(err error) {
	var zero R
	x.future.complete(zero, err)
}

// Future returns the underlying Future.
func (x *completer[R]) Future() Future[R] {
	return x.future
}
