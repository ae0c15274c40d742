package catalog_repo

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"

	"aromapos/internal/core/id"
)

func TestBaseCatalogRepo_Delete_SQL(t *testing.T) {
	repo := NewBaseCatalogRepo[any](nil, "test_table", []string{"id", "name"}, func() any { return nil })
	entityID := id.New()

	q := repo.Builder().
		Delete(repo.tableName).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	wantSQL := "DELETE FROM test_table WHERE id = $1"
	if sql != wantSQL {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", wantSQL, sql)
	}
	// squirrel.Eq runs args through driver.Valuer, so the UUID arrives
	// as its string form.
	if len(args) != 1 || args[0] != entityID.String() {
		t.Errorf("Args mismatch\nwant: [%v]\ngot:  %v", entityID, args)
	}
}

func TestBaseCatalogRepo_BaseSelect_SQL(t *testing.T) {
	repo := NewBaseCatalogRepo[any](nil, "cat_things", []string{"id", "code", "name"}, func() any { return nil })

	sql, _, err := repo.baseSelect(context.Background()).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	wantSQL := "SELECT id, code, name FROM cat_things"
	if sql != wantSQL {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", wantSQL, sql)
	}
}
