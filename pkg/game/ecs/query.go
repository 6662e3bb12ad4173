package ecs

import "malefactor/pkg/engine/world"

// Drawable is one row of the (position, renderable, not hidden) query
type Drawable struct {
	Entity     EntityID
	Position   Position
	Renderable Renderable
}

// Position returns the entity's position component
func (w *World) Position(id EntityID) (*Position, bool) {
	c, ok := w.GetComponent(id, PositionID)
	if !ok {
		return nil, false
	}
	p, ok := c.(*Position)
	return p, ok
}

// Renderable returns the entity's renderable component
func (w *World) Renderable(id EntityID) (*Renderable, bool) {
	c, ok := w.GetComponent(id, RenderableID)
	if !ok {
		return nil, false
	}
	r, ok := c.(*Renderable)
	return r, ok
}

// Viewshed returns the entity's viewshed component
func (w *World) Viewshed(id EntityID) (*Viewshed, bool) {
	c, ok := w.GetComponent(id, ViewshedID)
	if !ok {
		return nil, false
	}
	v, ok := c.(*Viewshed)
	return v, ok
}

// Name returns the entity's display name, or "" if it has none
func (w *World) Name(id EntityID) string {
	c, ok := w.GetComponent(id, NameID)
	if !ok {
		return ""
	}
	if n, ok := c.(*Name); ok {
		return n.Name
	}
	return ""
}

// Renderables returns every entity that has a position and a renderable and
// is not hidden, in creation order.
func (w *World) Renderables() []Drawable {
	var out []Drawable
	for _, id := range w.EntitiesWith(PositionID, RenderableID) {
		if w.HasComponent(id, HiddenID) {
			continue
		}
		pos, ok := w.Position(id)
		if !ok {
			continue
		}
		rend, ok := w.Renderable(id)
		if !ok {
			continue
		}
		out = append(out, Drawable{Entity: id, Position: *pos, Renderable: *rend})
	}
	return out
}

// PlayerEntity returns the first entity carrying the Player marker
func (w *World) PlayerEntity() (EntityID, bool) {
	ids := w.EntitiesWith(PlayerID)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// BlockedAt reports whether any BlocksTile entity stands on p
func (w *World) BlockedAt(p world.Point) bool {
	for _, id := range w.EntitiesWith(PositionID, BlocksTileID) {
		if pos, ok := w.Position(id); ok && pos.Point() == p {
			return true
		}
	}
	return false
}

// UpdateViewsheds recomputes every dirty viewshed against m. Viewsheds
// belonging to the player also update the map's visible and revealed bits.
func (w *World) UpdateViewsheds(m *world.Map) {
	for _, id := range w.EntitiesWith(PositionID, ViewshedID) {
		vs, _ := w.Viewshed(id)
		if vs == nil || !vs.Dirty {
			continue
		}
		pos, _ := w.Position(id)
		vs.Visible = world.CalculateFOV(m, pos.Point(), vs.Range)
		vs.Dirty = false
		if w.HasComponent(id, PlayerID) {
			world.ApplyFOV(m, vs.Visible)
		}
	}
}
