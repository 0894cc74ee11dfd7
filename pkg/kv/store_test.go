package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_GetOrCompute(t *testing.T) {
	s := New[string, int]()
	calls := 0
	compute := func() int {
		calls++
		return 7
	}

	assert.Equal(t, 7, s.GetOrCompute("k", compute))
	assert.Equal(t, 7, s.GetOrCompute("k", compute))
	assert.Equal(t, 1, calls, "second lookup is served from the store")
}

func TestStore_Clear(t *testing.T) {
	s := New[string, int]()
	s.Set("a", 1)
	s.Set("b", 2)

	s.Clear()

	assert.Equal(t, 0, s.Len())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New[int, int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.GetOrCompute(n%10, func() int { return n % 10 * 2 })
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
	for i := 0; i < 10; i++ {
		v, ok := s.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i*2, v)
	}
}
