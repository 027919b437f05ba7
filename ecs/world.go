package ecs

import "letterbound/ecs/component"

// System updates a world once per fixed tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, the simulation clock, the event
// queue, and the system update order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
	clock    Clock

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty world ticking at the given fixed timestep.
func NewWorld(step float64) *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		clock:  Clock{step: step},
	}
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	return w.entities.alive(e)
}

// Entities returns all live entity handles.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, len(w.entities.gens))
	for i := range w.entities.gens {
		e := w.entities.handleFor(entityID(i + 1))
		if w.entities.alive(e) {
			out = append(out, e)
		}
	}
	return out
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, advances the clock, and dispatches queued
// events to subscribers.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.clock.Advance()
	w.events.dispatch()
}

// Clock returns the simulation clock.
func (w *World) Clock() *Clock {
	return &w.clock
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

// SetPhysicsWorld attaches a physics world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	return w.physicsWorld
}
