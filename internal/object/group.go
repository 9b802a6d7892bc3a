package object

// Group is a pool of entities that recycles dead members instead of allocating.
// A Group with maxSize > 0 has fixed capacity; maxSize == 0 grows on demand.
// Slots are never removed, so indices stay stable for the life of the pool.
type Group struct {
	members []*Entity
	maxSize int
}

// NewGroup creates an empty pool. maxSize <= 0 means unbounded.
func NewGroup(maxSize int) *Group {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Group{
		members: make([]*Entity, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends an entity. Returns false if the pool is at capacity.
func (g *Group) Add(e *Entity) bool {
	if g.maxSize > 0 && len(g.members) >= g.maxSize {
		return false
	}
	g.members = append(g.members, e)
	return true
}

// FirstDead returns the first member that is not alive, in slot order.
func (g *Group) FirstDead() (*Entity, bool) {
	for _, e := range g.members {
		if !e.Alive {
			return e, true
		}
	}
	return nil, false
}

// Recycle returns a dead member for reinitialization, or a new one from factory
// if none is dead and the pool has room. Returns false if no slot is available;
// the caller should drop whatever it wanted to spawn.
func (g *Group) Recycle(factory func() *Entity) (*Entity, bool) {
	if e, ok := g.FirstDead(); ok {
		return e, true
	}
	if factory == nil {
		return nil, false
	}
	if g.maxSize > 0 && len(g.members) >= g.maxSize {
		return nil, false
	}
	e := factory()
	g.members = append(g.members, e)
	return e, true
}

// Update updates every alive and active member in slot order.
// Members added during the pass are updated too.
func (g *Group) Update(ctx UpdateContext) {
	for i := 0; i < len(g.members); i++ {
		e := g.members[i]
		if e.Alive && e.Active {
			e.Update(ctx)
		}
	}
}

// ForEachAlive calls fn for every alive member in slot order.
func (g *Group) ForEachAlive(fn func(i int, e *Entity)) {
	for i := 0; i < len(g.members); i++ {
		if e := g.members[i]; e.Alive {
			fn(i, e)
		}
	}
}

// ForEachVisible calls fn for every alive and visible member in slot order.
func (g *Group) ForEachVisible(fn func(e *Entity)) {
	for _, e := range g.members {
		if e.Alive && e.Visible {
			fn(e)
		}
	}
}

// Draw hands every alive and visible member to the renderer.
func (g *Group) Draw(r Renderer) {
	g.ForEachVisible(r.DrawEntity)
}

// CountAlive returns the number of alive members.
func (g *Group) CountAlive() int {
	n := 0
	for _, e := range g.members {
		if e.Alive {
			n++
		}
	}
	return n
}

// Len returns the number of allocated slots.
func (g *Group) Len() int {
	return len(g.members)
}

// Member returns the entity in slot i.
func (g *Group) Member(i int) *Entity {
	return g.members[i]
}
