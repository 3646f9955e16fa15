// Package locks provides per-room mutual exclusion for booking writers.
package locks

import (
	"context"
	"sync"
)

// Keyed is an in-process lock per room id. Entries are dropped once nobody
// holds or waits for them.
type Keyed struct {
	mu    sync.Mutex
	rooms map[int64]*keyedEntry
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{rooms: make(map[int64]*keyedEntry)}
}

func (k *Keyed) Lock(ctx context.Context, roomID int64) (func(), error) {
	k.mu.Lock()
	e, ok := k.rooms[roomID]
	if !ok {
		e = &keyedEntry{sem: make(chan struct{}, 1)}
		k.rooms[roomID] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(roomID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			k.release(roomID, e)
		})
	}, nil
}

func (k *Keyed) release(roomID int64, e *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.rooms, roomID)
	}
}

// held is the number of rooms with a holder or waiter.
func (k *Keyed) held() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.rooms)
}
