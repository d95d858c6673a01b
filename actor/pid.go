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
	"fmt"
	"runtime"

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/postal/errors"
	"github.com/tochemey/postal/log"
)

// run loop scheduling states
const (
	idle int32 = iota
	busy
)

// actor lifecycle states
const (
	stateRunning uint32 = iota
	stateStopping
	stateStopped
)

// pid is the internal actor process: it owns the actor's state value, its
// mailbox and the run loop that applies envelopes to that state one at a
// time. Callers never see a pid directly; they hold addresses.
type pid[A Actor] struct {
	id      string
	actor   A
	mailbox Mailbox[A]
	logger  log.Logger

	// execution context handed to every handler invocation
	context *Context
	// canceled once the actor has fully stopped
	ctx    context.Context
	cancel context.CancelFunc

	// idle/busy token: exactly one goroutine at a time consumes the mailbox
	processing atomic.Int32
	state      atomic.Uint32
	// strong address reference count; the actor stops when it drops to zero
	refs atomic.Int64

	processedCount atomic.Int64

	// closed once the actor has fully stopped
	stoppedCh chan struct{}
}

// doReceive pushes an envelope onto the actor's mailbox and signals the run
// loop to process it. It reports ErrDisconnected once the actor is no longer
// running. An enqueue failure is folded into ErrDisconnected as well: a
// disposed mailbox and a stopped actor are the same outcome to the sender.
func (x *pid[A]) doReceive(envelope Envelope[A]) error {
	if x.state.Load() != stateRunning {
		return gerrors.ErrDisconnected
	}

	if err := x.mailbox.Enqueue(envelope); err != nil {
		x.logger.Warn(err)
		return fmt.Errorf("%w: %v", gerrors.ErrDisconnected, err)
	}
	x.schedule()
	return nil
}

// schedule starts a run loop goroutine when transitioning from idle to busy.
// If another loop is already consuming the mailbox, it exits early.
func (x *pid[A]) schedule() {
	if !x.processing.CompareAndSwap(idle, busy) {
		return
	}
	go x.receiveLoop()
}

// receiveLoop extracts every envelope from the mailbox and applies it to the
// actor, one at a time. Once the actor is stopping, remaining envelopes are
// discarded instead so that no pending reply is left hanging.
//
// The loop releases the busy token when the mailbox drains and re-acquires it
// when an envelope raced in between the last Dequeue and the release; this is
// what keeps exactly one consumer alive without a dedicated goroutine per
// actor.
func (x *pid[A]) receiveLoop() {
	for {
		if x.state.Load() != stateRunning {
			x.drainMailbox()
			x.processing.Store(idle)
			if !x.mailbox.IsEmpty() && x.processing.CompareAndSwap(idle, busy) {
				continue
			}
			return
		}

		if envelope := x.mailbox.Dequeue(); envelope != nil {
			x.handleEnvelope(envelope)
			continue
		}

		// if no more envelopes, change busy state to idle
		x.processing.Store(idle)

		// check whether new envelopes were added in the meantime and restart
		if !x.mailbox.IsEmpty() && x.processing.CompareAndSwap(idle, busy) {
			continue
		}
		return
	}
}

// handleEnvelope applies one envelope to the actor's state. A panicking
// handler never takes the run loop down: the panic is recovered, logged and
// surfaced to an asking caller through the envelope's reply.
func (x *pid[A]) handleEnvelope(envelope Envelope[A]) {
	defer func() {
		if r := recover(); r != nil {
			x.logger.Errorf("actor=(%s) handler panicked: %v", x.id, r)
			envelope.discard(fmt.Errorf("%w: handler panicked: %v", gerrors.ErrDisconnected, r))
		}
	}()
	envelope.Handle(x.context, x.actor)
	x.processedCount.Inc()
}

// drainMailbox discards every envelope left in the mailbox, failing pending
// replies with ErrDisconnected. Must be called while holding the busy token.
func (x *pid[A]) drainMailbox() {
	for envelope := x.mailbox.Dequeue(); envelope != nil; envelope = x.mailbox.Dequeue() {
		envelope.discard(gerrors.ErrDisconnected)
	}
}

// requestStop triggers an asynchronous shutdown. Safe to call from within a
// handler: the envelope being handled runs to completion first.
func (x *pid[A]) requestStop() {
	go func() {
		if err := x.shutdown(context.Background()); err != nil {
			x.logger.Error(err)
		}
	}()
}

// shutdown stops the actor. The envelope currently being handled runs to
// completion; every envelope still queued afterwards is discarded with
// ErrDisconnected. The actor's PostStop hook runs exactly once, after the
// mailbox has been drained and disposed.
//
// Concurrent and repeated calls are safe: late callers wait until the first
// shutdown completes or their context expires. When the initiating caller's
// context expires behind a busy handler, shutdown returns the context error
// and the sequence completes in the background once the handler returns.
func (x *pid[A]) shutdown(ctx context.Context) error {
	if !x.state.CompareAndSwap(stateRunning, stateStopping) {
		// another caller is already stopping the actor; wait it out
		select {
		case <-x.stoppedCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	x.logger.Debugf("actor=(%s) is shutting down..", x.id)

	// acquire the processing token so the in-flight envelope completes first
	for !x.processing.CompareAndSwap(idle, busy) {
		if err := ctx.Err(); err != nil {
			// the deadline expired behind a busy handler; finish in the
			// background once it returns so PostStop still runs and callers
			// waiting on stoppedCh are released
			go x.finish()
			return err
		}
		runtime.Gosched()
	}
	return x.complete(ctx)
}

// finish acquires the processing token without a deadline and completes the
// shutdown sequence. Used when the caller that initiated the shutdown gave up
// waiting: the actor must still converge to stopped exactly once.
func (x *pid[A]) finish() {
	for !x.processing.CompareAndSwap(idle, busy) {
		runtime.Gosched()
	}
	if err := x.complete(context.Background()); err != nil {
		x.logger.Error(err)
	}
}

// complete runs the terminal half of the shutdown sequence. The caller must
// hold the processing token and have moved the state to stateStopping.
func (x *pid[A]) complete(ctx context.Context) error {
	x.drainMailbox()
	x.mailbox.Dispose()

	x.state.Store(stateStopped)
	close(x.stoppedCh)
	x.cancel()

	err := x.actor.PostStop(ctx)

	// release the token; discard any straggler that raced past the state check
	x.processing.Store(idle)
	if !x.mailbox.IsEmpty() && x.processing.CompareAndSwap(idle, busy) {
		x.drainMailbox()
		x.processing.Store(idle)
	}

	if err != nil {
		return err
	}

	x.logger.Debugf("actor=(%s) successfully shutdown", x.id)
	return nil
}

// isConnected reports whether the actor's mailbox endpoint is still reachable.
func (x *pid[A]) isConnected() bool {
	return x.state.Load() == stateRunning
}

// retain adds one strong reference. It fails once the count has already
// reached zero: a fully released actor cannot be revived.
func (x *pid[A]) retain() error {
	for {
		current := x.refs.Load()
		if current <= 0 {
			return gerrors.ErrAlreadyReleased
		}
		if x.refs.CompareAndSwap(current, current+1) {
			return nil
		}
	}
}

// release drops one strong reference and triggers the actor's shutdown when
// the count reaches zero.
func (x *pid[A]) release() {
	if x.refs.Dec() == 0 {
		x.logger.Debugf("actor=(%s) has no strong reference left", x.id)
		x.requestStop()
	}
}
