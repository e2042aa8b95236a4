// Package sql implements a reach.Source over database/sql.
//
// The mapped item tables are:
//
//	entity_classes(id, name, is_valid)
//	entity_class_dimensions(class_id, position, dimension_id)
//	entities(id, class_id, is_valid)
//	entity_elements(entity_id, position, element_id)
//	subclass_declarations(id, subclass_id, superclass_id, is_valid)
//
// Dependency lists are read ordered by position, preserving declaration
// order. Rows are never deleted in-session; is_valid carries soft deletion,
// and every row is returned — filtering invalid items is the graph
// builder's job, not the source's.
//
// Open registers nothing: callers import the driver they want, as with
// database/sql itself:
//
//	import _ "modernc.org/sqlite"
//
//	src, err := sql.Open(dialect.SQLite, "file:model.db")
//
// Every source carries a fresh uuid identity, so two connections to the
// same database are distinct cache keys. That is deliberate: the cache
// contract keys on source identity, not on the data behind it.
package sql
