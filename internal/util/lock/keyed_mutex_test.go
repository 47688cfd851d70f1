package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	const workers = 16
	const iterations = 100

	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for range iterations {
				unlock := km.Lock(42)
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*iterations, counter)
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	unlockA := km.Lock(1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock(2)
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a distinct key blocked")
	}
}

func TestKeyedMutex_EntryRemovedAfterRelease(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	unlock := km.Lock(7)
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	require.Empty(t, km.entries)
}
