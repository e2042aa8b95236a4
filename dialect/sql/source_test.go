package sql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/reach"
	"github.com/syssam/reach/dialect"
)

func mockSource(t *testing.T) (*Source, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return OpenDB(dialect.Postgres, db), mock
}

func TestOpenUnsupportedDialect(t *testing.T) {
	_, err := Open("oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported dialect "oracle"`)
}

func TestOpenDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	src := OpenDB("postgres+otel", db)
	assert.Equal(t, dialect.Postgres, src.Dialect())
	assert.Same(t, db, src.DB())
	assert.NotEmpty(t, src.Identity())

	other := OpenDB(dialect.Postgres, db)
	assert.NotEqual(t, src.Identity(), other.Identity(),
		"two sources over one database stay distinct cache keys")
}

func TestMappedTableClasses(t *testing.T) {
	src, mock := mockSource(t)

	mock.ExpectQuery("SELECT id, name, is_valid FROM entity_classes").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_valid"}).
			AddRow(1, "A", true).
			AddRow(2, "A_", true).
			AddRow(3, "gone", false))
	mock.ExpectQuery("SELECT class_id, dimension_id FROM entity_class_dimensions").
		WillReturnRows(sqlmock.NewRows([]string{"class_id", "dimension_id"}).
			AddRow(2, 1).
			AddRow(2, 1).
			AddRow(99, 1)) // dangling link rows are ignored

	items, err := src.MappedTable(context.Background(), reach.KindEntityClass)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, items, 3)

	a := items[2].(reach.EntityClass)
	assert.Equal(t, "A_", a.Name)
	assert.Equal(t, []reach.ID{1, 1}, a.DimensionIDs, "order and multiplicity preserved")
	assert.False(t, items[3].Valid(), "invalid rows are returned, not filtered")
	assert.NotContains(t, items, reach.ID(99))
}

func TestMappedTableEntities(t *testing.T) {
	src, mock := mockSource(t)

	mock.ExpectQuery("SELECT id, class_id, is_valid FROM entities").
		WillReturnRows(sqlmock.NewRows([]string{"id", "class_id", "is_valid"}).
			AddRow(10, 1, true).
			AddRow(11, 2, true))
	mock.ExpectQuery("SELECT entity_id, element_id FROM entity_elements").
		WillReturnRows(sqlmock.NewRows([]string{"entity_id", "element_id"}).
			AddRow(11, 10))

	items, err := src.MappedTable(context.Background(), reach.KindEntity)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	rel := items[11].(reach.Entity)
	assert.Equal(t, reach.ID(2), rel.ClassID)
	assert.Equal(t, []reach.ID{10}, rel.ElementIDs)
	assert.Empty(t, items[10].(reach.Entity).ElementIDs)
}

func TestMappedTableSubclassDeclarations(t *testing.T) {
	src, mock := mockSource(t)

	mock.ExpectQuery("SELECT id, subclass_id, superclass_id, is_valid FROM subclass_declarations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "subclass_id", "superclass_id", "is_valid"}).
			AddRow(5, 2, 1, true))

	items, err := src.MappedTable(context.Background(), reach.KindSubclassOf)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	d := items[5].(reach.SubclassDecl)
	assert.Equal(t, reach.ID(2), d.SubclassID())
	assert.Equal(t, reach.ID(1), d.SuperclassID())
	assert.True(t, d.Valid())
}

func TestMappedTableUnknownKind(t *testing.T) {
	src, _ := mockSource(t)

	_, err := src.MappedTable(context.Background(), "unrelated_kind")
	require.Error(t, err)
	assert.False(t, reach.IsSourceUnavailable(err), "caller bug, not a source failure")
}

func TestMappedTableQueryError(t *testing.T) {
	src, mock := mockSource(t)

	cause := errors.New("connection reset")
	mock.ExpectQuery("SELECT id, name, is_valid FROM entity_classes").
		WillReturnError(cause)

	_, err := src.MappedTable(context.Background(), reach.KindEntityClass)
	require.Error(t, err)
	assert.True(t, reach.IsSourceUnavailable(err))
	assert.True(t, errors.Is(err, cause), "underlying error preserved")

	var ue *reach.SourceUnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, src.Identity(), ue.Identity())
}

func TestMappedTableScanError(t *testing.T) {
	src, mock := mockSource(t)

	mock.ExpectQuery("SELECT id, name, is_valid FROM entity_classes").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_valid"}).
			AddRow("not-an-id", "A", true))

	_, err := src.MappedTable(context.Background(), reach.KindEntityClass)
	require.Error(t, err)
	assert.True(t, reach.IsSourceUnavailable(err))
}

func TestCreateSchemaError(t *testing.T) {
	src, mock := mockSource(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS entity_classes").
		WillReturnError(errors.New("permission denied"))

	err := src.CreateSchema(context.Background())
	require.Error(t, err)
	assert.True(t, reach.IsSourceUnavailable(err))
}
