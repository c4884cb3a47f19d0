package dialect

import "strings"

type OracleDialect struct{}

func (d *OracleDialect) TablesQuery() string {
	// USER_TABLES lists tables owned by the connected user; the dummy clause
	// consumes the schema argument standard callers pass.
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL`
}

func (d *OracleDialect) ColumnsQuery() string {
	return `SELECT TABLE_NAME, COLUMN_NAME, DATA_TYPE, NULLABLE FROM USER_TAB_COLUMNS WHERE :1 IS NOT NULL ORDER BY TABLE_NAME, COLUMN_ID`
}

func (d *OracleDialect) DefaultSchema() string {
	return "USER"
}

func (d *OracleDialect) NormalizeType(sqlType string) string {
	s := strings.ToLower(sqlType)
	switch {
	case strings.Contains(s, "char"), strings.Contains(s, "clob"):
		return "string"
	case strings.Contains(s, "number"), strings.Contains(s, "int"), strings.Contains(s, "float"):
		return "integer"
	case strings.Contains(s, "date"), strings.Contains(s, "time"):
		return "datetime"
	default:
		return s
	}
}
