package burst

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	blockSize = 64
)

// Store holds the active particles in fixed-size blocks. Freed slots are
// reused, and an id index maps each ElementId to its slot.
type Store struct {
	blocks    [][blockSize]Particle
	filled    [][blockSize]bool
	freeSlots []int
	nextIndex int
	index     *intmap.Map[ElementId, int]
}

// NewStore creates an empty particle store.
func NewStore() *Store {
	return &Store{
		index: intmap.New[ElementId, int](256),
	}
}

// Insert adds p to the store. Inserting an id that is already present
// overwrites the existing particle.
func (s *Store) Insert(p Particle) {
	if slot, ok := s.index.Get(p.Id); ok {
		s.blocks[slot/blockSize][slot%blockSize] = p
		return
	}

	var slot int
	if len(s.freeSlots) > 0 {
		slot = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		slot = s.nextIndex
		s.nextIndex++
		if slot/blockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, [blockSize]Particle{})
			s.filled = append(s.filled, [blockSize]bool{})
		}
	}

	s.blocks[slot/blockSize][slot%blockSize] = p
	s.filled[slot/blockSize][slot%blockSize] = true
	s.index.Put(p.Id, slot)
}

// Remove deletes the particle with the given id. It reports whether a
// particle was removed.
func (s *Store) Remove(id ElementId) bool {
	slot, ok := s.index.Get(id)
	if !ok {
		return false
	}

	blockIdx := slot / blockSize
	slotIdx := slot % blockSize

	s.filled[blockIdx][slotIdx] = false
	s.blocks[blockIdx][slotIdx] = Particle{}
	s.freeSlots = append(s.freeSlots, slot)
	s.index.Del(id)
	return true
}

// Get returns a pointer to the particle with the given id, or nil.
// The pointer is valid until the particle is removed.
func (s *Store) Get(id ElementId) *Particle {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	return &s.blocks[slot/blockSize][slot%blockSize]
}

// Has reports whether a particle with the given id is stored.
func (s *Store) Has(id ElementId) bool {
	_, ok := s.index.Get(id)
	return ok
}

// Len returns the number of stored particles.
func (s *Store) Len() int {
	return s.index.Len()
}

// Iter yields every stored particle in slot order.
func (s *Store) Iter() iter.Seq[*Particle] {
	return func(yield func(*Particle) bool) {
		for i := 0; i < s.nextIndex; i++ {
			blockIdx := i / blockSize
			slotIdx := i % blockSize

			if s.filled[blockIdx][slotIdx] {
				if !yield(&s.blocks[blockIdx][slotIdx]) {
					return
				}
			}
		}
	}
}

// Clear drops every particle and releases the blocks.
func (s *Store) Clear() {
	s.blocks = nil
	s.filled = nil
	s.freeSlots = nil
	s.nextIndex = 0
	s.index.Clear()
}
