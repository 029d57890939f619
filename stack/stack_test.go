package stack

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPushPopOrder(t *testing.T) {
	s := New(0)
	assert.Equal(t, DefaultCapacity, s.Cap())
	assert.True(t, s.IsEmpty())

	for _, v := range []int{1, 0, 1, 1} {
		assert.NoError(t, s.Push(v))
	}

	assert.Equal(t, 4, s.Len())

	top, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 1, top)

	var popped []int

	for !s.IsEmpty() {
		v, err := s.Pop()
		assert.NoError(t, err)

		popped = append(popped, v)
	}

	assert.Equal(t, []int{1, 1, 0, 1}, popped)
}

func TestPushOverflow(t *testing.T) {
	const capacity = 8

	s := New(capacity)

	for i := range capacity {
		assert.NoError(t, s.Push(i))
	}

	assert.True(t, s.IsFull())

	err := s.Push(42)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Contains(t, err.Error(), "42")
	assert.Equal(t, capacity, s.Len())

	top, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, capacity-1, top)
}

func TestDefaultCapacityOverflow(t *testing.T) {
	s := New(DefaultCapacity)

	var last error
	for i := 0; i <= DefaultCapacity; i++ {
		last = s.Push(1)
	}

	assert.IsError(t, last, ErrOverflow)
	assert.Equal(t, DefaultCapacity, s.Len())
}

func TestPopUnderflow(t *testing.T) {
	s := New(4)

	_, err := s.Pop()
	assert.IsError(t, err, ErrUnderflow)
	assert.Equal(t, 0, s.Len())

	_, err = s.Peek()
	assert.IsError(t, err, ErrUnderflow)
}

func TestReset(t *testing.T) {
	s := New(4)
	assert.NoError(t, s.Push(1))
	assert.NoError(t, s.Push(0))

	s.Reset()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 4, s.Cap())

	// a reset stack must not expose a leftover slot
	_, err := s.Pop()
	assert.IsError(t, err, ErrUnderflow)
}
