// Package sqloptions loads select, radio and checkbox options from a SQL
// query.
package sqloptions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-mform/pkg/model"
)

// ErrNoColumns is returned when a query yields no columns.
var ErrNoColumns = errors.New("sqloptions: query returned no columns")

// Querier is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Load runs query and maps each row to an option. The first column is the
// option key and the second its label; a single column is used for both.
// Further columns are ignored. NULL keys are skipped.
func Load(ctx context.Context, db Querier, query string, args ...any) ([]model.Option, error) {
	if db == nil {
		return nil, errors.New("sqloptions: querier is required")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("sqloptions: query is required")
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqloptions: query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("sqloptions: columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	var out []model.Option
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("sqloptions: scan: %w", err)
		}
		if !values[0].Valid {
			continue
		}
		option := model.Option{Key: values[0].String, Label: values[0].String}
		if len(values) > 1 && values[1].Valid {
			option.Label = values[1].String
		}
		out = append(out, option)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqloptions: rows: %w", err)
	}
	return out, nil
}
