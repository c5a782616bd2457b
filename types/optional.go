package types

import "fmt"

// Optional holds a value that may be absent. The zero Optional is absent.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

func None[T any]() Optional[T] { return Optional[T]{} }

// FromPointer maps nil to None, used for decoded optional fields.
func FromPointer[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) IsSet() bool { return o.set }

func (o Optional[T]) Get() (v T, ok bool) { return o.value, o.set }

func (o Optional[T]) GetOr(def T) T {
	if o.set {
		return o.value
	}
	return def
}

func (o Optional[T]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("%v", o.value)
}
