package ecs_test

import (
	"reflect"
	"testing"

	"github.com/Reith19/Gaming/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleton(t *testing.T) {
	t.Run("initializer used once", func(t *testing.T) {
		storage := ecs.NewStorage()

		first := ecs.NewSingleton(storage, Counter{Value: 7})
		second := ecs.NewSingleton(storage, Counter{Value: 99})

		assert.Equal(t, 7, second.Get().Value)
		first.Get().Value = 8
		assert.Equal(t, 8, second.Get().Value)
		assert.Equal(t, 1, storage.SingletonCount())
	})

	t.Run("zero value without initializer", func(t *testing.T) {
		storage := ecs.NewStorage()

		s := ecs.NewSingleton[Limit](storage)
		require.True(t, s.Exists())
		assert.Zero(t, s.Get().Max)
	})

	t.Run("replacing keeps accessors valid", func(t *testing.T) {
		storage := ecs.NewStorage()
		s := ecs.NewSingleton(storage, Counter{Value: 1})
		ptr := s.Get()

		storage.AddSingleton(Counter{Value: 5})

		assert.Same(t, ptr, s.Get())
		assert.Equal(t, 5, ptr.Value)
		assert.Equal(t, 1, storage.SingletonCount())
	})

	t.Run("pointer argument stores the value", func(t *testing.T) {
		storage := ecs.NewStorage()
		src := &Limit{Max: 4}
		storage.AddSingleton(src)

		s := ecs.NewSingleton[Limit](storage)
		src.Max = 10
		assert.Equal(t, 4, s.Get().Max)
	})

	t.Run("missing singleton", func(t *testing.T) {
		storage := ecs.NewStorage()
		var s ecs.Singleton[Counter]
		s.Init(storage)

		assert.False(t, s.Exists())
		assert.Nil(t, s.Get())

		storage.AddSingleton(Counter{Value: 3})
		assert.Equal(t, 3, s.Get().Value)

		assert.True(t, storage.RemoveSingleton(reflect.TypeFor[Counter]()))
		assert.False(t, storage.RemoveSingleton(reflect.TypeFor[Counter]()))
	})

	t.Run("nil singleton panics", func(t *testing.T) {
		storage := ecs.NewStorage()
		assert.Panics(t, func() { storage.AddSingleton((*Counter)(nil)) })
	})
}
