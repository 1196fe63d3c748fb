package utils

// OrderedSet keeps strings in first-insertion order without duplicates.
type OrderedSet struct {
	seen  map[string]struct{}
	items []string
}

// NewOrderedSet creates a set seeded with the given values.
func NewOrderedSet(seed ...string) *OrderedSet {
	s := &OrderedSet{seen: make(map[string]struct{}, len(seed))}
	s.Add(seed...)
	return s
}

// Add inserts values that are not already present.
// It reports whether at least one value was new.
func (s *OrderedSet) Add(values ...string) bool {
	added := false
	for _, v := range values {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
		added = true
	}
	return added
}

// Len returns the number of distinct values.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the values in insertion order. Never nil.
func (s *OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
