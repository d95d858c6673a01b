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
	"github.com/tochemey/postal/log"
)

// spawnConfig holds the tunable settings applied when spawning an actor.
type spawnConfig[A Actor] struct {
	id      string
	logger  log.Logger
	mailbox Mailbox[A]
}

// SpawnOption configures an actor at spawn time.
type SpawnOption[A Actor] func(*spawnConfig[A])

// WithID sets the actor's unique identifier. When not set, a random UUID is
// generated.
func WithID[A Actor](id string) SpawnOption[A] {
	return func(config *spawnConfig[A]) {
		config.id = id
	}
}

// WithLogger sets the logger attached to the actor. Defaults to
// log.DefaultLogger.
func WithLogger[A Actor](logger log.Logger) SpawnOption[A] {
	return func(config *spawnConfig[A]) {
		config.logger = logger
	}
}

// WithMailbox sets the mailbox the actor consumes from. Defaults to an
// unbounded DefaultMailbox.
func WithMailbox[A Actor](mailbox Mailbox[A]) SpawnOption[A] {
	return func(config *spawnConfig[A]) {
		config.mailbox = mailbox
	}
}
