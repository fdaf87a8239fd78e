// Package stack provides a small generic LIFO stack, used as the lazily
// allocated container for undo snapshots.
package stack

// Stack is a LIFO stack of T. The zero value is ready to use; a *Stack that
// is nil means "never initialized", which callers can distinguish from an
// initialized but empty stack.
type Stack[T any] struct {
	items []T
}

// New creates an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds one value to the stack top.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top value. Returns the zero value and false
// if the stack is empty; popping an empty stack is not an error.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	last := len(s.items) - 1
	value := s.items[last]
	s.items = s.items[:last]

	return value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len reports the current stack depth.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
