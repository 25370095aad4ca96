package core

// Lazy caches a value derived from entity state.
// The value is rebuilt on the next Get after Invalidate and reused otherwise.
type Lazy[T any] struct {
	build  func() T
	value  T
	valid  bool
	builds int
}

// NewLazy creates a cache around build. Nothing is built until the first Get.
func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{build: build}
}

// Get returns the cached value, rebuilding it if it was invalidated.
func (l *Lazy[T]) Get() T {
	if !l.valid {
		l.value = l.build()
		l.valid = true
		l.builds++
	}
	return l.value
}

// Invalidate marks the cached value as stale.
func (l *Lazy[T]) Invalidate() {
	l.valid = false
}

// Builds returns how many times the value has been built.
func (l *Lazy[T]) Builds() int {
	return l.builds
}
