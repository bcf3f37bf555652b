package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_LoadEmpty(t *testing.T) {
	var s Snapshot[string]
	v, ok := s.Load()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestSnapshot_StoreAndReset(t *testing.T) {
	var s Snapshot[[]int]
	s.Store([]int{1, 2})

	v, ok := s.Load()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	s.Reset()
	_, ok = s.Load()
	assert.False(t, ok)
}

func TestSnapshot_LoadOrFill(t *testing.T) {
	var s Snapshot[string]
	calls := 0
	fill := func() (string, error) {
		calls++
		return "out", nil
	}

	for i := 0; i < 3; i++ {
		v, err := s.LoadOrFill(fill)
		require.NoError(t, err)
		assert.Equal(t, "out", v)
	}
	assert.Equal(t, 1, calls)
}

func TestSnapshot_LoadOrFillErrorNotStored(t *testing.T) {
	var s Snapshot[string]
	boom := errors.New("boom")

	_, err := s.LoadOrFill(func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	_, ok := s.Load()
	assert.False(t, ok)
}
