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

	"github.com/tochemey/postal/log"
)

// Context is the execution context handed to a handler on every dispatch.
//
// It is owned by the actor's run loop and must not be retained beyond the
// handler invocation that received it.
type Context struct {
	ctx    context.Context
	id     string
	logger log.Logger
	stop   func()
}

// Context returns the underlying go context tied to the actor's lifetime.
// It is canceled once the actor has fully stopped, which lets handler code
// abort long-running work during shutdown.
func (x *Context) Context() context.Context {
	return x.ctx
}

// ActorID returns the unique identifier of the actor handling the message.
func (x *Context) ActorID() string {
	return x.id
}

// Logger returns the logger attached to the actor.
func (x *Context) Logger() log.Logger {
	return x.logger
}

// Stop requests the actor's shutdown. The envelope currently being handled
// runs to completion; any envelope still queued after that is discarded and
// its pending reply, when present, fails with ErrDisconnected.
//
// Stop returns immediately; the shutdown completes asynchronously.
func (x *Context) Stop() {
	x.stop()
}
