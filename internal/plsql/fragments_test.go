package plsql_test

import (
	"strings"
	"testing"

	"migrt/internal/mapping"
	"migrt/internal/plsql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customersSpec(t *testing.T) *mapping.MigrationSpec {
	t.Helper()
	spec, err := mapping.ParseRow(mapping.MappingRow{
		SourceTable:     "CUSTOMERS_OLD",
		TargetTable:     "CUSTOMERS_NEW",
		SourceColumns:   "ID,NAME,EMAIL,REG_DATE,STATUS",
		TargetColumns:   "ID,FULL_NAME,EMAIL,REGISTRATION_DATE,STATUS_CODE",
		Transformations: "NAME->FULL_NAME,REG_DATE->REGISTRATION_DATE,STATUS->STATUS_CODE (MAP: 'A'->1,'I'->0)",
		WhereCondition:  "STATUS <> 'D'",
		RelatedInserts:  "KEY:migrt_key(ID):NAME",
	})
	require.NoError(t, err)
	return spec
}

func TestSelectList(t *testing.T) {
	spec := customersSpec(t)
	assert.Equal(t, "ID, NAME, EMAIL, REG_DATE, STATUS", plsql.SelectList(spec))

	assert.Equal(t, "*", plsql.SelectList(&mapping.MigrationSpec{SelectAll: true}))
}

func TestInsertColumns_DeclaredOrder(t *testing.T) {
	spec := customersSpec(t)
	assert.Equal(t,
		[]string{"ID", "FULL_NAME", "EMAIL", "REGISTRATION_DATE", "STATUS_CODE"},
		plsql.InsertColumns(spec))
}

func TestValueExpressions_CaseBranchOrder(t *testing.T) {
	spec := customersSpec(t)
	exprs := plsql.ValueExpressions(spec, "v_rows(i)")
	require.Len(t, exprs, 5)

	assert.Equal(t, "v_rows(i).ID", exprs[0])
	assert.Equal(t, "v_rows(i).NAME", exprs[1], "a rename without a MAP stays a plain reference")

	caseExpr := exprs[4]
	active := strings.Index(caseExpr, "WHEN v_rows(i).STATUS = 'A' THEN 1")
	inactive := strings.Index(caseExpr, "WHEN v_rows(i).STATUS = 'I' THEN 0")
	require.GreaterOrEqual(t, active, 0)
	require.GreaterOrEqual(t, inactive, 0)
	assert.Less(t, active, inactive, "CASE branches must follow declaration order")
	assert.Contains(t, caseExpr, "ELSE v_rows(i).STATUS")
}

func TestWhereClause(t *testing.T) {
	spec := customersSpec(t)
	assert.Equal(t, " WHERE STATUS <> 'D'", plsql.WhereClause(spec))

	assert.Empty(t, plsql.WhereClause(&mapping.MigrationSpec{}))
}

func TestRelatedInsertStatements(t *testing.T) {
	spec := customersSpec(t)
	stmts := plsql.RelatedInsertStatements(spec, "v_rows(i)")
	require.Len(t, stmts, 1)

	assert.Contains(t, stmts[0], "MERGE INTO migrt_key t")
	assert.Contains(t, stmts[0], "v_rows(i).ID AS key_val")
	assert.Contains(t, stmts[0], "v_rows(i).NAME AS value_val")
	assert.Contains(t, stmts[0], "ON (t."+plsql.LookupKeyColumn+" = s.key_val)")
	assert.Contains(t, stmts[0], "UPDATE SET t."+plsql.LookupValueColumn+" = s.value_val")
}

func TestInferOracleType(t *testing.T) {
	cases := map[string]string{
		"ID":            "NUMBER",
		"CUSTOMER_ID":   "NUMBER",
		"REG_DATE":      "DATE",
		"UPDATED_TIME":  "DATE",
		"TOTAL_AMOUNT":  "NUMBER",
		"UNIT_PRICE":    "NUMBER",
		"SHIPPING_COST": "NUMBER",
		"NAME":          "VARCHAR2(4000)",
	}
	for col, want := range cases {
		assert.Equalf(t, want, plsql.InferOracleType(col), "column %s", col)
	}
}
