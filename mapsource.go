package reach

import "context"

// MapSource is an in-memory Source backed by plain maps. It is the
// reference implementation for hosts that map their own object model, and
// the source used throughout the test suite.
//
// MapSource is not safe for concurrent use; like the cache itself it
// expects a single logical thread of control.
type MapSource struct {
	identity string
	tables   map[Kind]map[ID]Item
}

// NewMapSource returns an empty MapSource with the given identity.
// An empty identity is replaced with a fresh NewSourceID.
func NewMapSource(identity string) *MapSource {
	if identity == "" {
		identity = NewSourceID()
	}
	return &MapSource{
		identity: identity,
		tables:   make(map[Kind]map[ID]Item),
	}
}

// Identity implements Source.
func (s *MapSource) Identity() string { return s.identity }

// Put inserts or replaces items, routed by their Kind. Replacing an item
// with one whose Valid() is false is how callers soft-delete.
func (s *MapSource) Put(items ...Item) {
	for _, it := range items {
		t, ok := s.tables[it.Kind()]
		if !ok {
			t = make(map[ID]Item)
			s.tables[it.Kind()] = t
		}
		t[it.ItemID()] = it
	}
}

// MappedTable implements Source. The returned map is a shallow copy, so a
// caller holding it does not observe later Puts.
func (s *MapSource) MappedTable(_ context.Context, kind Kind) (map[ID]Item, error) {
	t := s.tables[kind]
	out := make(map[ID]Item, len(t))
	for id, it := range t {
		out[id] = it
	}
	return out, nil
}
