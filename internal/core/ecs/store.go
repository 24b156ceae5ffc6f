package ecs

// Removable is implemented by every component store so the world can strip
// a destroyed entity's data from all stores without knowing their types.
type Removable interface {
	Remove(id EntityID)
}

// Store is a typed component map keyed by entity. Components are held by
// pointer so systems mutate them in place. Pure generics, no reflection.
type Store[T any] struct {
	data map[EntityID]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		data: make(map[EntityID]*T, 64),
	}
}

func (s *Store[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each visits every component in the store. Adding or removing entries from
// within fn is not supported; defer removals through World.MarkDestroyed.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}
