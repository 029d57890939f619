// Package stack provides the bounded operand stack used by the RPN evaluator.
package stack

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the number of operands a stack holds when no capacity is given.
const DefaultCapacity = 1000

// Sentinel errors
var (
	ErrOverflow  = errors.New("stack overflow")
	ErrUnderflow = errors.New("not enough operands in expression")
)

// Stack is a fixed-capacity LIFO of integers.
// A zero Stack is not usable; create one with New.
type Stack struct {
	data []int
}

// New creates an empty stack. A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Stack{
		data: make([]int, 0, capacity),
	}
}

// Reset empties the stack without releasing its storage.
func (s *Stack) Reset() {
	s.data = s.data[:0]
}

// Push adds v to the top of the stack.
// When the stack is full the value is rejected and the stack is left unchanged.
func (s *Stack) Push(v int) error {
	if len(s.data) == cap(s.data) {
		return fmt.Errorf("%w: cannot push element %d", ErrOverflow, v)
	}

	s.data = append(s.data, v)

	return nil
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (int, error) {
	if len(s.data) == 0 {
		return 0, ErrUnderflow
	}

	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]

	return v, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int, error) {
	if len(s.data) == 0 {
		return 0, ErrUnderflow
	}

	return s.data[len(s.data)-1], nil
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.data)
}

// Cap returns the maximum number of values the stack can hold.
func (s *Stack) Cap() int {
	return cap(s.data)
}

func (s *Stack) IsEmpty() bool {
	return len(s.data) == 0
}

func (s *Stack) IsFull() bool {
	return len(s.data) == cap(s.data)
}
