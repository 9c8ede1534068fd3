package burst

// Commands buffers changes to the active particle set. They are applied at
// the end of a frame so systems never change membership mid-iteration.
type Commands struct {
	spawns   []Particle
	despawns []ElementId
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues p to join the active set.
func (c *Commands) Spawn(p Particle) {
	c.spawns = append(c.spawns, p)
}

// Despawn queues removal of the particle with the given id.
func (c *Commands) Despawn(id ElementId) {
	c.despawns = append(c.despawns, id)
}

// Defer queues fn to run after spawns and despawns are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports whether any command is queued.
func (c *Commands) Pending() bool {
	return len(c.spawns)+len(c.despawns)+len(c.defers) > 0
}

// Flush applies all queued commands to store and display, then resets the
// buffer. It returns how many particles were added and removed.
func (c *Commands) Flush(store *Store, display Display) (spawned, despawned int) {
	for _, id := range c.despawns {
		if !store.Remove(id) {
			continue
		}
		despawned++
		if display.Attached(id) {
			display.Detach(id)
		}
	}

	for _, p := range c.spawns {
		store.Insert(p)
		display.Attach(p.Id, p.Sprite)
		display.Place(p.Id, p.Transform())
		spawned++
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	clear(c.defers)
	c.defers = c.defers[:0]

	return spawned, despawned
}
