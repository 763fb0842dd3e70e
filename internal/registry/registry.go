// Package registry provides a concurrent, name keyed store used to resolve
// channel names to their shared instances.
package registry

import "github.com/alphadose/haxmap"

type Registry[T any] interface {
	Get(name string) (T, bool)
	Add(name string, value T)
	// GetOrAdd returns the value stored under name, computing and storing it
	// when absent. The boolean reports whether the value already existed.
	GetOrAdd(name string, value func() T) (T, bool)
	Del(name string)
	ForEach(fn func(name string, value T) bool)
	Len() int
}

type registry[T any] struct {
	values *haxmap.Map[string, T]
}

func New[T any]() Registry[T] {
	return &registry[T]{
		values: haxmap.New[string, T](),
	}
}

func (r *registry[T]) Get(name string) (T, bool) {
	return r.values.Get(name)
}

func (r *registry[T]) Add(name string, value T) {
	r.values.Set(name, value)
}

func (r *registry[T]) GetOrAdd(name string, valueFn func() T) (T, bool) {
	return r.values.GetOrCompute(name, valueFn)
}

func (r *registry[T]) Del(name string) {
	r.values.Del(name)
}

// ForEach visits every entry until fn returns false. Entries added or removed
// while iterating may or may not be visited.
func (r *registry[T]) ForEach(fn func(name string, value T) bool) {
	r.values.ForEach(fn)
}

func (r *registry[T]) Len() int {
	return int(r.values.Len())
}
