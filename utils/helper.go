package utils

// DereferencePtr dereferences a pointer, returning the zero value (or the
// optional default) when nil.
func DereferencePtr[T any](ptr *T, defaultValue ...T) T {
	if ptr != nil {
		return *ptr
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	var zero T
	return zero
}

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

// Ptr returns a pointer to v. Handy for optional struct fields.
func Ptr[T any](v T) *T {
	return &v
}
