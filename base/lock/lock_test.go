package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()
	count := 0

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock("a")
			defer m.Unlock("a")
			count++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, count)
	assert.Len(t, m.locks, 0)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	m := NewKeyedMutex()

	m.Lock("a")

	released := make(chan struct{})
	go func() {
		m.Lock("b")
		defer m.Unlock("b")
		close(released)
	}()

	// key "b" must not wait for key "a"
	<-released

	m.Unlock("a")
	assert.Len(t, m.locks, 0)
}
