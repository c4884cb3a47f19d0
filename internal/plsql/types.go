package plsql

import "strings"

// InferOracleType guesses a column's Oracle type from its name, for record
// declarations when the mapping carries no type information. Identifier-ish
// and money-ish names become NUMBER, date-ish names DATE, everything else a
// wide VARCHAR2.
func InferOracleType(column string) string {
	upper := strings.ToUpper(column)

	switch {
	case strings.Contains(upper, "ID"):
		return "NUMBER"
	case strings.Contains(upper, "DATE"), strings.Contains(upper, "TIME"):
		return "DATE"
	case strings.Contains(upper, "AMOUNT"), strings.Contains(upper, "PRICE"), strings.Contains(upper, "COST"):
		return "NUMBER"
	default:
		return "VARCHAR2(4000)"
	}
}
