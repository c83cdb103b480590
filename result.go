package lookuptable

// Result carries either a computed value or the error that prevented
// its computation, as a single tagged value. It is the alternative
// reporting form to the canonical (value, error) return: every Query*
// method wraps the corresponding Lookup* method and behaves identically
// for identical inputs.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully computed value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Errf wraps a failure. A nil err produces an Ok result.
func Errf[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Valid reports whether the result holds a value.
func (r Result[T]) Valid() bool {
	return r.err == nil
}

// Value returns the computed value, or the zero value when the result
// is an error. Check Valid or Err first when the zero value is
// meaningful.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error carried by the result, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// ErrorMessage returns the carried error's text, or "" for a valid
// result.
func (r Result[T]) ErrorMessage() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Unpack converts the result back to the canonical (value, error) form.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}
