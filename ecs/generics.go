package ecs

import "letterbound/ecs/component"

// Add attaches (or replaces) a component on an entity.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.entities.alive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e.id(), value)
	return nil
}

// Get returns the component pointer for an entity, if present.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.entities.alive(e) {
		return nil, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return nil, false
	}
	v := s.Get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.entities.alive(e) {
		return false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return false
	}
	return s.Remove(e.id())
}

// First returns some live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, id := range s.denseIDs {
		e := w.entities.handleFor(id)
		if w.entities.alive(e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	s, ok := w.stores[kind.ID()]
	if !ok {
		return
	}
	// iterate over a snapshot so fn may add or remove components
	ids := append([]entityID(nil), s.denseIDs...)
	for _, id := range ids {
		e := w.entities.handleFor(id)
		if !w.entities.alive(e) {
			continue
		}
		v := s.Get(id)
		if v == nil {
			continue
		}
		if cast, ok := v.(*T); ok {
			fn(e, cast)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}
