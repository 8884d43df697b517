package values

import "fmt"

// Optional is an explicit present/absent wrapper.
// The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr maps nil to None and anything else to Some
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present
func (o Optional[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the value if present, fallback otherwise
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// String renders "some(<v>)" or "none"
func (o Optional[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("some(%v)", o.value)
}

// MapOptional applies f to a present value and keeps absence as is
func MapOptional[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}
