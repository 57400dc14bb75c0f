package collections

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

// HashSetHashFunc derives the identity a set compares values by.
type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

// NewStringSet is a set of strings compared by value.
func NewStringSet() Set[string] {
	return NewHashSet(func(s string) string { return s })
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

// Add fails with ErrValueExisted when a value with the same identity is
// already present.
func (s *hashSet[R, V]) Add(v V) error {
	id := s.hashFunc(v)
	if _, ok := s.entries[id]; ok {
		return ErrValueExisted
	}
	s.entries[id] = v
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}
