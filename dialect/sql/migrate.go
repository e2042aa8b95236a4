package sql

import (
	"context"

	"github.com/syssam/reach"
)

// The DDL sticks to the portable subset all three dialects accept:
// BIGINT/INTEGER, BOOLEAN defaults, composite primary keys. The position
// column orders dependency lists; ids come from the owning model, so no
// auto-increment anywhere.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS entity_classes (
		id BIGINT NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		is_valid BOOLEAN NOT NULL DEFAULT TRUE,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS entity_class_dimensions (
		class_id BIGINT NOT NULL,
		position INTEGER NOT NULL,
		dimension_id BIGINT NOT NULL,
		PRIMARY KEY (class_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS entities (
		id BIGINT NOT NULL,
		class_id BIGINT NOT NULL DEFAULT 0,
		is_valid BOOLEAN NOT NULL DEFAULT TRUE,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS entity_elements (
		entity_id BIGINT NOT NULL,
		position INTEGER NOT NULL,
		element_id BIGINT NOT NULL,
		PRIMARY KEY (entity_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS subclass_declarations (
		id BIGINT NOT NULL,
		subclass_id BIGINT NOT NULL,
		superclass_id BIGINT NOT NULL,
		is_valid BOOLEAN NOT NULL DEFAULT TRUE,
		PRIMARY KEY (id)
	)`,
}

// CreateSchema creates the mapped item tables if they do not exist. It is
// a convenience for hosts that own the database; hosts reading someone
// else's model skip it.
func (s *Source) CreateSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return reach.NewSourceUnavailableError(s.identity, err)
		}
	}
	return nil
}
