package schema

import "strings"

// Table is one table of the live source schema.
type Table struct {
	Name    string
	Columns []*Column
}

// Column carries just enough of the live definition to check a mapping row
// against it.
type Column struct {
	Name       string
	DataType   string
	IsNullable bool
}

// Column returns the named column, matching case-insensitively the way the
// databases themselves resolve unquoted identifiers.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
