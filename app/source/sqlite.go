package source

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var _ RowSource = (*SQLiteSource)(nil)

// SQLiteSource reads rows from a table in a SQLite database, in rowid order.
// Column names are normalized the same way CSV headers are, so a table with
// columns Title, "Start Date", Category satisfies the same contract.
type SQLiteSource struct {
	path    string
	table   string
	aliases map[string]string
}

func NewSQLiteSource(path, table string, aliases map[string]string) *SQLiteSource {
	return &SQLiteSource{path: path, table: table, aliases: aliases}
}

func (s *SQLiteSource) Read() ([]Row, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer db.Close()

	result, err := db.Query(fmt.Sprintf(`SELECT * FROM %q ORDER BY rowid`, s.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", s.table, err)
	}
	defer result.Close()

	columns, err := result.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	fields := normalizeHeader(columns, s.aliases)
	if err := checkRequired(fields); err != nil {
		return nil, err
	}

	var rows []Row
	for result.Next() {
		values := make([]any, len(fields))
		pointers := make([]any, len(fields))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := result.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(fields))
		for i, field := range fields {
			row[field] = stringifyValue(values[i])
		}
		rows = append(rows, row)
	}

	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return rows, nil
}

func stringifyValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(value)
	case string:
		return value
	case time.Time:
		return value.Format(time.RFC3339)
	default:
		return fmt.Sprint(value)
	}
}
