package ecs

import "reflect"

// Singleton provides typed access to a single component instance that is not
// associated with any entity. Use it for board state, rules and other data
// every system shares.
type Singleton[T any] struct {
	storage       *Storage
	component     *T
	componentType reflect.Type
}

// NewSingleton creates a Singleton accessor for storage. If the singleton does
// not exist yet it is created from initializer, or from the zero value when no
// initializer is given. The singleton is guaranteed to exist after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	if storage.getSingletonEntry(componentType) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(&value)
	}

	s := &Singleton[T]{storage: storage, componentType: componentType}
	s.updateCache()
	return s
}

// Init binds the Singleton to storage. The Scheduler calls it for every
// Singleton field of a system during registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it has not been
// added to storage.
func (s *Singleton[T]) Get() *T {
	if s.component == nil {
		s.updateCache()
	}
	return s.component
}

// Exists reports whether the singleton component has been added to storage.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	entry := s.storage.getSingletonEntry(s.componentType)
	if entry == nil {
		s.component = nil
		return
	}
	s.component = entry.value.Addr().Interface().(*T)
}
