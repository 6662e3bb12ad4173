// Package ecs is a small entity-component store: entities are IDs, components
// are stored per entity keyed by ComponentID.
package ecs

import (
	"sort"
)

// EntityID is a unique identifier for an entity within a World
type EntityID uint64

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// World manages all entities and components
type World struct {
	nextID     EntityID
	components map[EntityID]ComponentMap
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		components: make(map[EntityID]ComponentMap),
	}
}

// CreateEntity creates a new entity with no components
func (w *World) CreateEntity() EntityID {
	w.nextID++
	w.components[w.nextID] = make(ComponentMap)
	return w.nextID
}

// Exists reports whether the entity is alive
func (w *World) Exists(id EntityID) bool {
	_, ok := w.components[id]
	return ok
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(id EntityID) {
	delete(w.components, id)
}

// AddComponent adds a component to an entity. Unknown entities are ignored.
func (w *World) AddComponent(id EntityID, cid ComponentID, c Component) {
	cm, ok := w.components[id]
	if !ok {
		return
	}
	cm[cid] = c
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(id EntityID, cid ComponentID) (Component, bool) {
	if cm, ok := w.components[id]; ok {
		c, ok := cm[cid]
		return c, ok
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(id EntityID, cid ComponentID) bool {
	_, ok := w.GetComponent(id, cid)
	return ok
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(id EntityID, cid ComponentID) {
	if cm, ok := w.components[id]; ok {
		delete(cm, cid)
	}
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.components)
}

// Entities returns all entity IDs in creation order
func (w *World) Entities() []EntityID {
	ids := make([]EntityID, 0, len(w.components))
	for id := range w.components {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EntitiesWith returns, in creation order, the entities that have every
// listed component.
func (w *World) EntitiesWith(cids ...ComponentID) []EntityID {
	var ids []EntityID
	for _, id := range w.Entities() {
		cm := w.components[id]
		match := true
		for _, cid := range cids {
			if _, ok := cm[cid]; !ok {
				match = false
				break
			}
		}
		if match {
			ids = append(ids, id)
		}
	}
	return ids
}

