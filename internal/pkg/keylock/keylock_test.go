package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Lock("deluxe")
			defer k.Unlock("deluxe")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	k := New()
	k.Lock("deluxe")
	defer k.Unlock("deluxe")

	done := make(chan struct{})
	go func() {
		k.Lock("family")
		k.Unlock("family")
		close(done)
	}()

	<-done
}

func TestKeyedMutex_EntryDroppedAfterLastUnlock(t *testing.T) {
	k := New()
	k.Lock("deluxe")
	k.Unlock("deluxe")

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}
