package advice

// Hook is a pre-invocation observer for a method with receiver type R.
// It receives the same receiver and argument list as the original body and
// is invoked for its side effects only. A non-nil error aborts the
// remaining hook chain and the original body.
type Hook[R any] func(receiver R, args []any) error

// Method is a callable with an explicit receiver and argument list,
// returning a value of type T. It is the shape both original method bodies
// and decorated methods share, so decorations can stack.
type Method[R any, T any] func(receiver R, args []any) (T, error)

// Decorator transforms an original Method into a decorated Method with an
// identical calling convention.
type Decorator[R any, T any] func(method Method[R, T]) Method[R, T]

// Advice is an ordered, immutable sequence of hooks to run before a target
// method's body. Build it with Before.
type Advice[R any] struct {
	hooks []Hook[R]
}

// Before is a factory method for Advice.
//
// It captures the given hooks in declaration order; the slice is copied, so
// later mutation of the caller's slice does not affect the Advice. An empty
// hook list is valid and yields a passthrough decoration.
func Before[R any](hooks ...Hook[R]) Advice[R] {
	captured := make([]Hook[R], len(hooks))
	copy(captured, hooks)

	return Advice[R]{hooks: captured}
}

// Len reports the number of hooks in the Advice.
func (a Advice[R]) Len() int {
	return len(a.hooks)
}

// Apply produces the decorated method for the given Advice and original
// body. It is a pure transformation: the original body is not invoked at
// decoration time, only at call time.
//
// On every call the decorated method runs each hook exactly once, in order,
// with the caller's receiver and arguments, then delegates to the original
// body and returns its result unchanged. The first hook error short-circuits
// the call; neither subsequent hooks nor the body run.
func Apply[R any, T any](adv Advice[R], method Method[R, T]) Method[R, T] {
	hooks := adv.hooks

	return func(receiver R, args []any) (T, error) {
		for _, hook := range hooks {
			if hookErr := hook(receiver, args); hookErr != nil {
				var empty T
				return empty, hookErr
			}
		}

		return method(receiver, args)
	}
}

// Decorate adapts an Advice into a Decorator, so the same Advice can be
// applied to multiple distinct methods independently or stacked with Chain.
func Decorate[R any, T any](adv Advice[R]) Decorator[R, T] {
	return func(method Method[R, T]) Method[R, T] {
		return Apply(adv, method)
	}
}

// Chain decorates the given method with all decorators.
//
// The decorators are folded from last to first, so the first decorator in
// the list becomes the outermost one: its hooks run before those of every
// later decorator, and all hooks run before the original body.
func Chain[R any, T any](method Method[R, T], decorators ...Decorator[R, T]) Method[R, T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		method = decorators[i](method)
	}

	return method
}
