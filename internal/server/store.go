package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridplan/cspace"
	"github.com/katalvlaran/gridplan/raster"
	"github.com/katalvlaran/gridplan/spatial"
)

// space is a frozen configuration space plus what was used to build it.
type space struct {
	id        uuid.UUID
	view      *cspace.View
	obstacles []raster.Circle
	index     *spatial.Index
	regions   *cspace.RegionMap
	created   time.Time
}

// store keeps spaces by id. Views are immutable, so a space can be read
// concurrently once it is returned.
type store struct {
	mu     sync.RWMutex
	spaces map[uuid.UUID]*space
}

func newStore() *store {
	return &store{spaces: make(map[uuid.UUID]*space)}
}

func (s *store) put(sp *space) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces[sp.id] = sp
}

func (s *store) get(id uuid.UUID) (*space, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.spaces[id]

	return sp, ok
}

func (s *store) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.spaces[id]; !ok {
		return false
	}
	delete(s.spaces, id)

	return true
}

func (s *store) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.spaces)
}
