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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/postal/errors"
	"github.com/tochemey/postal/log"
)

func testContext() *Context {
	return &Context{
		ctx:    context.Background(),
		id:     "test",
		logger: log.DiscardLogger,
		stop:   func() {},
	}
}

func TestReturningEnvelope(t *testing.T) {
	t.Run("With handled message", func(t *testing.T) {
		act := &counter{}
		envelope, fut := newReturningEnvelope[*counter, ping, uint32](ping{})

		envelope.Handle(testContext(), act)

		got, err := fut.Await(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 1, got)
		assert.EqualValues(t, 1, act.count)
	})
	t.Run("With discarded envelope", func(t *testing.T) {
		envelope, fut := newReturningEnvelope[*counter, ping, uint32](ping{})

		envelope.discard(gerrors.ErrDisconnected)

		_, err := fut.Await(context.Background())
		require.ErrorIs(t, err, gerrors.ErrDisconnected)
	})
	t.Run("With reply after discard", func(t *testing.T) {
		act := &counter{}
		envelope, fut := newReturningEnvelope[*counter, ping, uint32](ping{})

		envelope.discard(gerrors.ErrDisconnected)
		// the envelope still applies, but the late reply is silently absorbed
		envelope.Handle(testContext(), act)

		_, err := fut.Await(context.Background())
		require.ErrorIs(t, err, gerrors.ErrDisconnected)
		assert.EqualValues(t, 1, act.count)
	})
}

func TestNonReturningEnvelope(t *testing.T) {
	act := &counter{}
	envelope := newNonReturningEnvelope[*counter, ping, uint32](ping{})

	// the handler computes its result, but nothing observes it
	envelope.Handle(testContext(), act)
	assert.EqualValues(t, 1, act.count)

	// discard is a no-op for a non-returning envelope
	envelope.discard(gerrors.ErrDisconnected)
}
