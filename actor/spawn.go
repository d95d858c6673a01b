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

	"github.com/google/uuid"
	"go.uber.org/multierr"

	gerrors "github.com/tochemey/postal/errors"
	"github.com/tochemey/postal/log"
)

// Spawn starts the given actor and returns the first strong address to it.
//
// The actor's PreStart hook runs synchronously before any message can be
// enqueued; when it fails, the spawn fails with an error wrapping
// ErrInitFailure and the actor never starts.
//
// The returned address holds the actor's initial strong reference: the actor
// stays reachable until every strong address has been released or Shutdown is
// called explicitly.
func Spawn[A Actor](ctx context.Context, act A, opts ...SpawnOption[A]) (*Address[A], error) {
	config := &spawnConfig[A]{}
	for _, opt := range opts {
		opt(config)
	}

	if config.id == "" {
		config.id = uuid.NewString()
	}
	if config.logger == nil {
		config.logger = log.DefaultLogger
	}
	if config.mailbox == nil {
		config.mailbox = NewDefaultMailbox[A]()
	}

	if err := act.PreStart(ctx); err != nil {
		return nil, multierr.Append(gerrors.ErrInitFailure, err)
	}

	pidCtx, cancel := context.WithCancel(context.Background())
	p := &pid[A]{
		id:        config.id,
		actor:     act,
		mailbox:   config.mailbox,
		logger:    config.logger,
		ctx:       pidCtx,
		cancel:    cancel,
		stoppedCh: make(chan struct{}),
	}
	p.context = &Context{
		ctx:    pidCtx,
		id:     p.id,
		logger: p.logger,
		stop:   p.requestStop,
	}
	p.state.Store(stateRunning)
	p.refs.Store(1)

	p.logger.Debugf("actor=(%s) successfully started", p.id)
	return &Address[A]{pid: p}, nil
}
