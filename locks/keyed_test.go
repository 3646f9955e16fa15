package locks

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyedSerializesSameRoom(t *testing.T) {
	k := NewKeyed()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := k.Lock(ctx, 1)
			require.NoError(t, err)
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), maxInside)
	require.Zero(t, k.held())
}

func TestKeyedRoomsIndependent(t *testing.T) {
	k := NewKeyed()
	ctx := context.Background()

	unlock1, err := k.Lock(ctx, 1)
	require.NoError(t, err)
	defer unlock1()

	ctx2, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlock2, err := k.Lock(ctx2, 2)
	require.NoError(t, err)
	unlock2()
}

func TestKeyedContextCancel(t *testing.T) {
	k := NewKeyed()
	unlock, err := k.Lock(context.Background(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = k.Lock(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	require.Zero(t, k.held())
}
