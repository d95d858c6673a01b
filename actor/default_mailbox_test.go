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
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDefaultMailbox_Basic(t *testing.T) {
	mailbox := NewDefaultMailbox[*counter]()

	in1 := newNonReturningEnvelope[*counter, ping, uint32](ping{})
	in2 := newNonReturningEnvelope[*counter, ping, uint32](ping{})

	err := mailbox.Enqueue(in1)
	require.NoError(t, err)
	err = mailbox.Enqueue(in2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, mailbox.Len())

	out1 := mailbox.Dequeue()
	out2 := mailbox.Dequeue()

	assert.Equal(t, in1, out1)
	assert.Equal(t, in2, out2)
	assert.True(t, mailbox.IsEmpty())

	// dequeue on empty should return nil
	assert.Nil(t, mailbox.Dequeue())

	mailbox.Dispose()
}

func TestDefaultMailbox_OneProducer(t *testing.T) {
	expCount := 100
	var wg sync.WaitGroup
	wg.Add(1)
	mailbox := NewDefaultMailbox[*counter]()

	go func() {
		defer wg.Done()
		i := 0
		for {
			r := mailbox.Dequeue()
			if r == nil {
				runtime.Gosched()
				continue
			}
			i++
			if i == expCount {
				return
			}
		}
	}()

	for n := 0; n < expCount; n++ {
		require.NoError(t, mailbox.Enqueue(newNonReturningEnvelope[*counter, ping, uint32](ping{})))
	}

	wg.Wait()
	assert.True(t, mailbox.IsEmpty())
}

func TestDefaultMailbox_ManyProducers(t *testing.T) {
	const producers = 8
	const perProducer = 250

	mailbox := NewDefaultMailbox[*counter]()

	var consumed sync.WaitGroup
	consumed.Add(1)
	go func() {
		defer consumed.Done()
		i := 0
		for i < producers*perProducer {
			if mailbox.Dequeue() == nil {
				runtime.Gosched()
				continue
			}
			i++
		}
	}()

	producerGroup := new(errgroup.Group)
	for p := 0; p < producers; p++ {
		producerGroup.Go(func() error {
			for n := 0; n < perProducer; n++ {
				if err := mailbox.Enqueue(newNonReturningEnvelope[*counter, ping, uint32](ping{})); err != nil {
					return err
				}
			}
			return nil
		})
	}

	require.NoError(t, producerGroup.Wait())
	consumed.Wait()
	assert.True(t, mailbox.IsEmpty())
}
