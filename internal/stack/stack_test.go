package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwolters/before-advice-go/internal/stack"
)

func Test_Stack_PushAndPop_AreLIFO(t *testing.T) {
	// arrange
	s := stack.New[string]()
	s.Push("a")
	s.Push("b")
	s.Push("c")

	// act + assert
	value, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "c", value)

	value, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", value)

	value, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "a", value)

	assert.Equal(t, 0, s.Len())
}

func Test_Stack_Pop_OnEmptyStack_IsSafe(t *testing.T) {
	// arrange
	s := stack.New[int]()

	// act
	value, ok := s.Pop()

	// assert
	assert.False(t, ok)
	assert.Zero(t, value)
}

func Test_Stack_Peek_DoesNotRemove(t *testing.T) {
	// arrange
	s := stack.New[int]()
	s.Push(42)

	// act
	value, ok := s.Peek()

	// assert
	assert.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, s.Len())
}

func Test_Stack_Peek_OnEmptyStack_IsSafe(t *testing.T) {
	s := stack.New[int]()

	_, ok := s.Peek()

	assert.False(t, ok)
}
