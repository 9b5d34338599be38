// Package fp holds small function-composition helpers used by the walk
// API: a Step is the partial successor function a custom walk follows,
// and steps compose like ordinary functions do.
package fp

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
  var a T
  return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
  return func() T {
	return a
  }
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Step is a partial function from A to A: it either produces a successor
// or reports that there is none. Walks iterate a Step until it gives out.
type Step[A any] func(A) (A, bool)

// ComposeSteps chains two steps into one: first g, then f, failing as soon
// as either fails.
func ComposeSteps[A any](g, f Step[A]) Step[A] {
	return func(a A) (A, bool) {
		b, ok := g(a)
		if !ok {
			return b, false
		}
		return f(b)
	}
}
