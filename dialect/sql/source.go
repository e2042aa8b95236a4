package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/syssam/reach"
	"github.com/syssam/reach/dialect"
)

// Source reads the mapped item tables from a SQL database. It implements
// reach.Source.
type Source struct {
	db       *sql.DB
	dialect  string
	identity string
}

// Open connects to the database named by dsn and wraps it as a Source.
// The dialect name doubles as the database/sql driver name, as registered
// by the imported driver package.
func Open(dialectName, dsn string) (*Source, error) {
	if !dialect.Known(dialectName) {
		return nil, fmt.Errorf("sql: unsupported dialect %q", dialectName)
	}
	db, err := sql.Open(dialectName, dsn)
	if err != nil {
		return nil, err
	}
	return OpenDB(dialectName, db), nil
}

// OpenDB wraps an existing database handle as a Source.
func OpenDB(dialectName string, db *sql.DB) *Source {
	return &Source{
		db:       db,
		dialect:  dialect.Detect(dialectName),
		identity: "sql:" + uuid.NewString(),
	}
}

// Identity implements reach.Source.
func (s *Source) Identity() string { return s.identity }

// Dialect returns the base dialect of the underlying driver.
func (s *Source) Dialect() string { return s.dialect }

// DB returns the underlying *sql.DB instance.
func (s *Source) DB() *sql.DB { return s.db }

// Close closes the underlying connection.
func (s *Source) Close() error { return s.db.Close() }

// MappedTable implements reach.Source. Read failures wrap into
// reach.SourceUnavailableError; asking for an unknown kind is a caller bug
// and errors without touching the database.
func (s *Source) MappedTable(ctx context.Context, kind reach.Kind) (map[reach.ID]reach.Item, error) {
	switch kind {
	case reach.KindEntityClass:
		return s.classTable(ctx)
	case reach.KindEntity:
		return s.entityTable(ctx)
	case reach.KindSubclassOf:
		return s.subclassTable(ctx)
	}
	return nil, fmt.Errorf("sql: unknown item kind %q", kind)
}

func (s *Source) classTable(ctx context.Context) (map[reach.ID]reach.Item, error) {
	classes := make(map[reach.ID]reach.EntityClass)
	err := s.scan(ctx, "SELECT id, name, is_valid FROM entity_classes", func(rows *sql.Rows) error {
		var c reach.EntityClass
		if err := rows.Scan(&c.ID, &c.Name, &c.IsValid); err != nil {
			return err
		}
		classes[c.ID] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = s.scan(ctx,
		"SELECT class_id, dimension_id FROM entity_class_dimensions ORDER BY class_id, position",
		func(rows *sql.Rows) error {
			var classID, dimID reach.ID
			if err := rows.Scan(&classID, &dimID); err != nil {
				return err
			}
			if c, ok := classes[classID]; ok {
				c.DimensionIDs = append(c.DimensionIDs, dimID)
				classes[classID] = c
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	out := make(map[reach.ID]reach.Item, len(classes))
	for id, c := range classes {
		out[id] = c
	}
	return out, nil
}

func (s *Source) entityTable(ctx context.Context) (map[reach.ID]reach.Item, error) {
	entities := make(map[reach.ID]reach.Entity)
	err := s.scan(ctx, "SELECT id, class_id, is_valid FROM entities", func(rows *sql.Rows) error {
		var e reach.Entity
		if err := rows.Scan(&e.ID, &e.ClassID, &e.IsValid); err != nil {
			return err
		}
		entities[e.ID] = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	err = s.scan(ctx,
		"SELECT entity_id, element_id FROM entity_elements ORDER BY entity_id, position",
		func(rows *sql.Rows) error {
			var entityID, elemID reach.ID
			if err := rows.Scan(&entityID, &elemID); err != nil {
				return err
			}
			if e, ok := entities[entityID]; ok {
				e.ElementIDs = append(e.ElementIDs, elemID)
				entities[entityID] = e
			}
			return nil
		})
	if err != nil {
		return nil, err
	}
	out := make(map[reach.ID]reach.Item, len(entities))
	for id, e := range entities {
		out[id] = e
	}
	return out, nil
}

func (s *Source) subclassTable(ctx context.Context) (map[reach.ID]reach.Item, error) {
	out := make(map[reach.ID]reach.Item)
	err := s.scan(ctx,
		"SELECT id, subclass_id, superclass_id, is_valid FROM subclass_declarations",
		func(rows *sql.Rows) error {
			var d reach.SubclassDecl
			if err := rows.Scan(&d.ID, &d.Subclass, &d.Superclass, &d.IsValid); err != nil {
				return err
			}
			out[d.ID] = d
			return nil
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scan runs a query and feeds every row to fn, wrapping any failure as
// source-unavailable.
func (s *Source) scan(ctx context.Context, query string, fn func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return reach.NewSourceUnavailableError(s.identity, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return reach.NewSourceUnavailableError(s.identity, err)
		}
	}
	if err := rows.Err(); err != nil {
		return reach.NewSourceUnavailableError(s.identity, err)
	}
	return nil
}
