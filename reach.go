package reach

import (
	"context"

	"github.com/google/uuid"
)

// ID identifies an item within a single source. IDs are only meaningful
// relative to the source that produced them.
type ID int64

// Kind names one of the mapped item families a source exposes.
type Kind string

// The item kinds a source can be asked to map.
const (
	// KindEntityClass is a schema-level type definition. A relationship
	// class carries an ordered list of dimension class ids.
	KindEntityClass Kind = "entity_class"

	// KindEntity is a concrete instance. A relationship entity carries an
	// ordered list of element entity ids.
	KindEntity Kind = "entity"

	// KindSubclassOf is a declared substitutability relationship between
	// two entity classes.
	KindSubclassOf Kind = "subclass_of"
)

// Known reports whether k is one of the defined item kinds.
func (k Kind) Known() bool {
	switch k {
	case KindEntityClass, KindEntity, KindSubclassOf:
		return true
	}
	return false
}

// Item is a row-like element of the external object model. Items are never
// physically removed in-session; a validity flag marks logical deletion,
// and graph builders skip invalid items entirely.
type Item interface {
	// ItemID returns the item's identifier within its source.
	ItemID() ID

	// Kind returns the item family this item belongs to.
	Kind() Kind

	// Valid reports whether the item is live. Invalid items are
	// soft-deleted and contribute neither nodes nor edges.
	Valid() bool
}

// Composite is an item built from other items of the same kind: a
// relationship class (built from dimension classes) or a relationship
// entity (built from element entities).
type Composite interface {
	Item

	// DependencyIDs returns the ids this item is constructed from, in
	// declaration order. Empty for non-relationship items.
	DependencyIDs() []ID
}

// Subtyping is a superclass/subclass declaration: an entity of the subclass
// may be used wherever an entity of the superclass is expected as a
// relationship dimension.
type Subtyping interface {
	Item

	SubclassID() ID
	SuperclassID() ID
}

// EntityClass is the concrete row type for KindEntityClass items.
type EntityClass struct {
	ID           ID
	Name         string
	IsValid      bool
	DimensionIDs []ID
}

func (c EntityClass) ItemID() ID          { return c.ID }
func (c EntityClass) Kind() Kind          { return KindEntityClass }
func (c EntityClass) Valid() bool         { return c.IsValid }
func (c EntityClass) DependencyIDs() []ID { return c.DimensionIDs }

// Entity is the concrete row type for KindEntity items.
type Entity struct {
	ID         ID
	ClassID    ID
	IsValid    bool
	ElementIDs []ID
}

func (e Entity) ItemID() ID          { return e.ID }
func (e Entity) Kind() Kind          { return KindEntity }
func (e Entity) Valid() bool         { return e.IsValid }
func (e Entity) DependencyIDs() []ID { return e.ElementIDs }

// SubclassDecl is the concrete row type for KindSubclassOf items.
type SubclassDecl struct {
	ID         ID
	IsValid    bool
	Subclass   ID
	Superclass ID
}

func (d SubclassDecl) ItemID() ID       { return d.ID }
func (d SubclassDecl) Kind() Kind       { return KindSubclassOf }
func (d SubclassDecl) Valid() bool      { return d.IsValid }
func (d SubclassDecl) SubclassID() ID   { return d.Subclass }
func (d SubclassDecl) SuperclassID() ID { return d.Superclass }

// Source is a handle to one external object model, e.g. a connection to one
// database. Identity, not content, keys the cache: two sources must never
// share an identity even if they momentarily contain identical data.
type Source interface {
	// Identity returns the opaque cache key for this source. Stable for
	// the lifetime of the source.
	Identity() string

	// MappedTable returns the current items of the given kind, keyed by
	// id. It must include invalid items; filtering is the builder's job.
	MappedTable(ctx context.Context, kind Kind) (map[ID]Item, error)
}

// NewSourceID returns a fresh identity string for a Source implementation.
func NewSourceID() string {
	return uuid.NewString()
}

// IDSet is a set of item ids, used as the target set of a reachability
// query.
type IDSet map[ID]struct{}

// NewIDSet returns the set of the given ids.
func NewIDSet(ids ...ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}
