package schema

import (
	"database/sql"
	"fmt"
	"strings"

	"migrt/internal/dialect"
)

// Analyze introspects the source database through the dialect and returns
// its tables with columns, in the order the catalog reported them.
func Analyze(db *sql.DB, d dialect.Dialect, schemaName string) ([]*Table, error) {
	if schemaName == "" {
		schemaName = d.DefaultSchema()
	}

	// Normalized keys give case-insensitive lookups (Oracle reports upper case).
	tableMap := make(map[string]*Table)
	var tables []*Table

	rows, err := db.Query(d.TablesQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		t := &Table{Name: name}
		tableMap[strings.ToUpper(name)] = t
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	colRows, err := db.Query(d.ColumnsQuery(), schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, dType, isNull sql.NullString
		if err := colRows.Scan(&tName, &cName, &dType, &isNull); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}
		if !tName.Valid || !cName.Valid {
			continue
		}

		if t, ok := tableMap[strings.ToUpper(tName.String)]; ok {
			t.Columns = append(t.Columns, &Column{
				Name:       cName.String,
				DataType:   d.NormalizeType(dType.String),
				IsNullable: isNull.String == "YES" || isNull.String == "Y",
			})
		}
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	return tables, nil
}
