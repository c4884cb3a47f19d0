package generate_test

import (
	"fmt"
	"testing"

	"migrt/internal/generate"
	"migrt/internal/mapping"
	"migrt/internal/plsql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []mapping.MappingRow {
	return []mapping.MappingRow{
		{
			SourceTable:     "CUSTOMERS_OLD",
			TargetTable:     "CUSTOMERS_NEW",
			SourceColumns:   "ID,NAME,EMAIL,REG_DATE,STATUS",
			TargetColumns:   "ID,FULL_NAME,EMAIL,REGISTRATION_DATE,STATUS_CODE",
			Transformations: "NAME->FULL_NAME,REG_DATE->REGISTRATION_DATE,STATUS->STATUS_CODE (MAP: 'A'->1,'I'->0)",
			WhereCondition:  "STATUS <> 'D'",
			RelatedInserts:  "KEY:migrt_key(ID):NAME",
		},
		{
			SourceTable:   "ORDERS_OLD",
			TargetTable:   "ORDERS_NEW",
			SourceColumns: "ORDER_ID,CUST_ID,ORDER_DATE,TOTAL_AMOUNT",
			TargetColumns: "ID,CUSTOMER_ID,ORDER_DATE,AMOUNT",
		},
	}
}

func TestRun_InputOrderAndNames(t *testing.T) {
	gen := generate.NewDeterministic(plsql.DefaultConfig())

	var ticks int
	results, summary, err := generate.Run(sampleRows(), gen, func() { ticks++ })
	require.NoError(t, err)

	assert.Equal(t, generate.Summary{Succeeded: 2, Failed: 0}, summary)
	assert.Equal(t, 2, ticks)
	require.Len(t, results, 2)

	assert.Equal(t, 1, results[0].RowIndex)
	assert.Equal(t, "migrt_customers_new", results[0].PackageName)
	assert.Contains(t, results[0].Text, "CREATE OR REPLACE PACKAGE BODY migrt_customers_new")

	assert.Equal(t, 2, results[1].RowIndex)
	assert.Equal(t, "migrt_orders_new", results[1].PackageName)
	assert.NotEqual(t, results[0].PackageName, results[1].PackageName)
}

func TestRun_ContinuesPastFailedRow(t *testing.T) {
	good := sampleRows()
	bad := mapping.MappingRow{SourceTable: "LONELY_OLD"} // no target table
	rows := []mapping.MappingRow{good[0], bad, good[1]}

	gen := generate.NewDeterministic(plsql.DefaultConfig())
	results, summary, err := generate.Run(rows, gen, nil)
	require.NoError(t, err)

	assert.Equal(t, generate.Summary{Succeeded: 2, Failed: 1}, summary)
	require.Len(t, results, 3)

	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.Equal(t, mapping.KindMissingRequiredField, results[1].ErrKind)
	assert.Empty(t, results[1].Text)
	assert.False(t, results[2].Failed(), "rows after a failure must still be processed")
	assert.Equal(t, 3, results[2].RowIndex)
}

func TestRun_NoRows(t *testing.T) {
	gen := generate.NewDeterministic(plsql.DefaultConfig())

	_, _, err := generate.Run(nil, gen, nil)
	assert.Error(t, err)

	_, _, err = generate.Run([]mapping.MappingRow{}, gen, nil)
	assert.Error(t, err)
}

type failingGenerator struct{}

func (failingGenerator) Generate(*mapping.MigrationSpec) (plsql.Package, error) {
	return plsql.Package{}, fmt.Errorf("not available")
}

func TestFallback_TriesNextGenerator(t *testing.T) {
	chain := &generate.Fallback{Chain: []generate.Generator{
		failingGenerator{},
		generate.NewDeterministic(plsql.DefaultConfig()),
	}}

	results, summary, err := generate.Run(sampleRows(), chain, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, "migrt_customers_new", results[0].PackageName)
}

func TestFallback_AllFail(t *testing.T) {
	chain := &generate.Fallback{Chain: []generate.Generator{failingGenerator{}}}
	_, err := chain.Generate(&mapping.MigrationSpec{SourceTable: "A", TargetTable: "B"})
	assert.EqualError(t, err, "not available")
}

func TestFallback_EmptyChain(t *testing.T) {
	chain := &generate.Fallback{}
	_, err := chain.Generate(&mapping.MigrationSpec{SourceTable: "A", TargetTable: "B"})
	assert.Error(t, err)
}
