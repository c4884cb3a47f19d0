package dialect

import (
	"fmt"
	"testing"
)

func TestGetDialect(t *testing.T) {
	cases := map[string]string{
		"mysql":     "*dialect.MysqlDialect",
		"postgres":  "*dialect.PostgresDialect",
		"sqlserver": "*dialect.MSSQLDialect",
		"mssql":     "*dialect.MSSQLDialect",
		"oracle":    "*dialect.OracleDialect",
		"unknown":   "*dialect.MysqlDialect",
	}

	for driver, want := range cases {
		if got := fmt.Sprintf("%T", GetDialect(driver)); got != want {
			t.Errorf("driver %s: got %s, want %s", driver, got, want)
		}
	}
}

func TestDefaultNormalizeType(t *testing.T) {
	cases := map[string]string{
		"varchar":   "string",
		"TEXT":      "string",
		"int":       "integer",
		"decimal":   "integer",
		"datetime":  "datetime",
		"timestamp": "datetime",
	}
	for sqlType, want := range cases {
		if got := DefaultNormalizeType(sqlType); got != want {
			t.Errorf("%s: got %s, want %s", sqlType, got, want)
		}
	}
}

func TestOracleNormalizeType(t *testing.T) {
	d := &OracleDialect{}
	if got := d.NormalizeType("NUMBER"); got != "integer" {
		t.Errorf("NUMBER: got %s, want integer", got)
	}
	if got := d.NormalizeType("VARCHAR2"); got != "string" {
		t.Errorf("VARCHAR2: got %s, want string", got)
	}
}
