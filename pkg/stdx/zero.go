package stdx

// Zero returns the zero value for a given type T.
func Zero[T any]() T {
	var zero T
	return zero
}

// As asserts v to T. When v is nil or holds a different type it returns the
// zero value of T and false.
func As[T any](v any) (T, bool) {
	if v == nil {
		return Zero[T](), false
	}
	t, ok := v.(T)
	if !ok {
		return Zero[T](), false
	}
	return t, true
}
