package sqloptions

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mform/pkg/model"
)

func TestLoad_KeyAndLabelColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	query := "SELECT id, name FROM rex_article WHERE clang_id = ?"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Home").
			AddRow(2, "Contact").
			AddRow(nil, "orphan"))

	got, err := Load(context.Background(), db, query, 1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []model.Option{
		{Key: "1", Label: "Home"},
		{Key: "2", Label: "Contact"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLoad_SingleColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT name FROM tags").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("go").AddRow("php"))

	got, err := Load(context.Background(), db, "SELECT name FROM tags")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []model.Option{{Key: "go", Label: "go"}, {Key: "php", Label: "php"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	errBoom := errors.New("table missing")
	mock.ExpectQuery("SELECT").WillReturnError(errBoom)

	if _, err := Load(context.Background(), db, "SELECT id FROM nope"); !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}

func TestLoad_RequiresQuery(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	if _, err := Load(context.Background(), db, "  "); err == nil {
		t.Fatalf("expected empty query to fail")
	}
	if _, err := Load(context.Background(), nil, "SELECT 1"); err == nil {
		t.Fatalf("expected nil querier to fail")
	}
}
