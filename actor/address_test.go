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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/postal/errors"
	"github.com/tochemey/postal/log"
)

func TestAddress(t *testing.T) {
	t.Run("With identity", func(t *testing.T) {
		ctx := context.Background()
		addr, err := Spawn(ctx, &counter{},
			WithLogger[*counter](log.DiscardLogger),
			WithID[*counter]("counter-1"))
		require.NoError(t, err)

		assert.Equal(t, "counter-1", addr.ID())
		assert.True(t, addr.IsConnected())
		require.NoError(t, addr.Shutdown(ctx))
		assert.False(t, addr.IsConnected())
	})
	t.Run("With release of the last strong address", func(t *testing.T) {
		ctx := context.Background()
		addr, err := Spawn(ctx, &counter{}, WithLogger[*counter](log.DiscardLogger))
		require.NoError(t, err)

		addr.Release()
		require.Eventually(t, func() bool {
			return !addr.IsConnected()
		}, time.Second, 10*time.Millisecond)

		// release is idempotent
		addr.Release()
	})
	t.Run("With clone keeping the actor alive", func(t *testing.T) {
		ctx := context.Background()
		addr, err := Spawn(ctx, &counter{}, WithLogger[*counter](log.DiscardLogger))
		require.NoError(t, err)

		clone, err := addr.Clone()
		require.NoError(t, err)

		addr.Release()
		assert.True(t, clone.IsConnected())

		got, err := Ask[uint32](clone, ping{}).Await(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, got)

		clone.Release()
		require.Eventually(t, func() bool {
			return !clone.IsConnected()
		}, time.Second, 10*time.Millisecond)
	})
	t.Run("With clone of a released address", func(t *testing.T) {
		ctx := context.Background()
		addr, err := Spawn(ctx, &counter{}, WithLogger[*counter](log.DiscardLogger))
		require.NoError(t, err)

		clone, err := addr.Clone()
		require.NoError(t, err)

		addr.Release()
		_, err = addr.Clone()
		require.ErrorIs(t, err, gerrors.ErrAlreadyReleased)

		require.NoError(t, clone.Shutdown(ctx))
	})
}

func TestWeakAddress(t *testing.T) {
	t.Run("With live actor", func(t *testing.T) {
		ctx := context.Background()
		addr, err := Spawn(ctx, &counter{}, WithLogger[*counter](log.DiscardLogger))
		require.NoError(t, err)

		weak := addr.Downgrade()
		assert.True(t, weak.IsConnected())
		assert.Equal(t, addr.ID(), weak.ID())

		require.NoError(t, addr.Shutdown(ctx))
		assert.False(t, weak.IsConnected())
	})
	t.Run("With all strong owners gone", func(t *testing.T) {
		addr, err := Spawn(context.Background(), &counter{}, WithLogger[*counter](log.DiscardLogger))
		require.NoError(t, err)

		weak := addr.Downgrade()
		addr.Release()

		// the weak address does not extend the actor's lifetime and observes
		// it becoming unreachable
		require.Eventually(t, func() bool {
			return !weak.IsConnected()
		}, time.Second, 10*time.Millisecond)
	})
}
