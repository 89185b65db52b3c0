// Package ecs runs game logic as ordered systems over shared singleton
// components, with per-system timing and a command buffer flushed at the end
// of every frame.
package ecs

import "reflect"

// Storage holds singleton components: values with exactly one instance that
// systems read and mutate in place.
type Storage struct {
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	value reflect.Value // addressable, never reallocated
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// AddSingleton stores component as the singleton of its type. Passing a
// pointer stores the pointed-to value. Replacing an existing singleton copies
// the new value into the old slot so accessors already handed out stay valid.
func (s *Storage) AddSingleton(component any) {
	value := reflect.ValueOf(component)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if !value.IsValid() {
		panic("cannot add a nil singleton")
	}

	compType := value.Type()
	if entry, ok := s.singletons[compType]; ok {
		entry.value.Set(value)
		return
	}

	slot := reflect.New(compType).Elem()
	slot.Set(value)
	s.singletons[compType] = &singletonEntry{value: slot}
}

// RemoveSingleton deletes the singleton of the given type. It reports whether
// one existed.
func (s *Storage) RemoveSingleton(compType reflect.Type) bool {
	if _, ok := s.singletons[compType]; !ok {
		return false
	}
	delete(s.singletons, compType)
	return true
}

// SingletonCount returns the number of stored singletons.
func (s *Storage) SingletonCount() int {
	return len(s.singletons)
}

func (s *Storage) getSingletonEntry(compType reflect.Type) *singletonEntry {
	return s.singletons[compType]
}
