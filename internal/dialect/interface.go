package dialect

// Dialect abstracts source-database schema introspection. The generator
// itself is database-free; only the mapping checker talks to a live source.
type Dialect interface {
	// TablesQuery returns a query listing base table names. The schema name
	// is passed as the single bind argument.
	TablesQuery() string
	// ColumnsQuery returns a query listing (table, column, data type,
	// nullable) rows for the bound schema, in ordinal position order.
	ColumnsQuery() string

	// DefaultSchema is used when the caller does not name one.
	DefaultSchema() string

	// NormalizeType folds an engine-specific type name into the coarse
	// string/integer/datetime buckets used by mapping checks.
	NormalizeType(sqlType string) string
}
