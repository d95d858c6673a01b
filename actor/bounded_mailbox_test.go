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

func TestBoundedMailbox(t *testing.T) {
	t.Run("With basic FIFO", func(t *testing.T) {
		mailbox, err := NewBoundedMailbox[*counter](4)
		require.NoError(t, err)

		in1 := newNonReturningEnvelope[*counter, ping, uint32](ping{})
		in2 := newNonReturningEnvelope[*counter, ping, uint32](ping{})

		require.NoError(t, mailbox.Enqueue(in1))
		require.NoError(t, mailbox.Enqueue(in2))
		assert.EqualValues(t, 2, mailbox.Len())
		assert.False(t, mailbox.IsEmpty())

		assert.Equal(t, in1, mailbox.Dequeue())
		assert.Equal(t, in2, mailbox.Dequeue())
		assert.True(t, mailbox.IsEmpty())
		assert.Nil(t, mailbox.Dequeue())

		mailbox.Dispose()
	})
	t.Run("With invalid capacity", func(t *testing.T) {
		_, err := NewBoundedMailbox[*counter](0)
		require.ErrorIs(t, err, gerrors.ErrInvalidCapacity)
	})
	t.Run("With disposed mailbox", func(t *testing.T) {
		mailbox, err := NewBoundedMailbox[*counter](2)
		require.NoError(t, err)
		mailbox.Dispose()

		err = mailbox.Enqueue(newNonReturningEnvelope[*counter, ping, uint32](ping{}))
		require.Error(t, err)
		assert.Nil(t, mailbox.Dequeue())
	})
	t.Run("With an actor consuming from it", func(t *testing.T) {
		ctx := context.Background()
		mailbox, err := NewBoundedMailbox[*counter](16)
		require.NoError(t, err)

		addr, err := Spawn(ctx, &counter{},
			WithLogger[*counter](log.DiscardLogger),
			WithMailbox[*counter](mailbox))
		require.NoError(t, err)

		for want := uint32(1); want <= 3; want++ {
			got, err := Ask[uint32](addr, ping{}).Await(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		require.NoError(t, addr.Shutdown(ctx))
	})
}
