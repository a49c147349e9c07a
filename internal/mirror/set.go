package mirror

type Set[T comparable] map[T]struct{}

func NewSet[T comparable]() Set[T] {
	return make(Set[T])
}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Contains(item T) bool {
	_, exists := s[item]
	return exists
}

func (s Set[T]) Size() int {
	return len(s)
}

// Difference returns the members of s absent from other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	diff := NewSet[T]()
	for item := range s {
		if !other.Contains(item) {
			diff.Add(item)
		}
	}
	return diff
}
