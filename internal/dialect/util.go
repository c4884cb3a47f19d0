package dialect

import "strings"

// DefaultNormalizeType folds common SQL type names into coarse buckets.
// Dialects with odd type systems (Oracle NUMBER and friends) override this.
func DefaultNormalizeType(sqlType string) string {
	s := strings.ToLower(sqlType)
	switch {
	case strings.Contains(s, "char"), strings.Contains(s, "text"), strings.Contains(s, "clob"):
		return "string"
	case strings.Contains(s, "int"), strings.Contains(s, "decimal"), strings.Contains(s, "numeric"),
		strings.Contains(s, "float"), strings.Contains(s, "double"), strings.Contains(s, "real"):
		return "integer"
	case strings.Contains(s, "date"), strings.Contains(s, "time"):
		return "datetime"
	default:
		return s
	}
}
