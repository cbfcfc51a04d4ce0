package grid

import "fmt"

// Store holds one value of type T per grid cell.
// Values live in a single flat slice in row-major order (see Indexer.Index).
type Store[T any] struct {
	Indexer
	data []T // len(data) == Size()
}

// NewStore creates a Store with every cell set to the zero value of T.
// Complexity: O(W×H) time and memory.
func NewStore[T any](ix Indexer) *Store[T] {
	return &Store[T]{Indexer: ix, data: make([]T, ix.Size())}
}

// NewFilledStore creates a Store with every cell set to v.
// Complexity: O(W×H) time and memory.
func NewFilledStore[T any](ix Indexer, v T) *Store[T] {
	s := NewStore[T](ix)
	s.Fill(v)

	return s
}

// StoreFrom creates a Store pre-populated from a row-major slice.
// The slice is copied. Returns ErrSizeMismatch if len(data) != W×H; this
// usually means corrupt or incompatible persisted data.
// Complexity: O(W×H).
func StoreFrom[T any](ix Indexer, data []T) (*Store[T], error) {
	if len(data) != ix.Size() {
		return nil, fmt.Errorf("%w: %d values for %d×%d grid (want %d)",
			ErrSizeMismatch, len(data), ix.Width(), ix.Height(), ix.Size())
	}
	cp := make([]T, len(data))
	copy(cp, data)

	return &Store[T]{Indexer: ix, data: cp}, nil
}

// At returns the value at (x, y). Panics when out of range.
func (s *Store[T]) At(x, y uint) T {
	return s.data[s.Index(x, y)]
}

// AtCell returns the value at c. Panics when out of range.
func (s *Store[T]) AtCell(c Cell) T {
	return s.data[s.Index(c.X, c.Y)]
}

// Set assigns v at (x, y). Panics when out of range.
func (s *Store[T]) Set(x, y uint, v T) {
	s.data[s.Index(x, y)] = v
}

// SetCell assigns v at c. Panics when out of range.
func (s *Store[T]) SetCell(c Cell, v T) {
	s.data[s.Index(c.X, c.Y)] = v
}

// Fill assigns v to every cell.
func (s *Store[T]) Fill(v T) {
	for i := range s.data {
		s.data[i] = v
	}
}

// Values returns a row-major copy of all cell values.
func (s *Store[T]) Values() []T {
	cp := make([]T, len(s.data))
	copy(cp, s.data)

	return cp
}

// Clone returns a deep copy of the store; the backing slice is not shared.
func (s *Store[T]) Clone() *Store[T] {
	return &Store[T]{Indexer: s.Indexer, data: s.Values()}
}
