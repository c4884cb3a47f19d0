package plsql

import (
	"fmt"
	"strings"

	"migrt/internal/mapping"
)

// Fragment rendering is pure and stateless: the same spec always renders the
// same text, including the order of CASE branches, which follows the order
// literals were declared in the rule text.

// SelectList renders the source column list for the bulk fetch, or "*" when
// the spec migrates all columns.
func SelectList(spec *mapping.MigrationSpec) string {
	if spec.SelectAll {
		return "*"
	}
	names := make([]string, len(spec.Columns))
	for i, cm := range spec.Columns {
		names[i] = cm.Source
	}
	return strings.Join(names, ", ")
}

// InsertColumns renders the target column names, in declared order.
func InsertColumns(spec *mapping.MigrationSpec) []string {
	names := make([]string, len(spec.Columns))
	for i, cm := range spec.Columns {
		names[i] = cm.Target
	}
	return names
}

// ValueExpressions renders one value expression per column mapping. rowRef
// is the collection element reference the expressions read from, e.g.
// "v_rows(i)". Columns with a value map become CASE expressions.
func ValueExpressions(spec *mapping.MigrationSpec, rowRef string) []string {
	exprs := make([]string, len(spec.Columns))
	for i, cm := range spec.Columns {
		exprs[i] = valueExpression(cm, rowRef)
	}
	return exprs
}

func valueExpression(cm mapping.ColumnMapping, rowRef string) string {
	src := rowRef + "." + cm.Source
	if len(cm.ValueMap) == 0 {
		return src
	}

	var b strings.Builder
	b.WriteString("CASE\n")
	for _, p := range cm.ValueMap {
		fmt.Fprintf(&b, "            WHEN %s = '%s' THEN %s\n", src, p.From, p.To)
	}
	fmt.Fprintf(&b, "            ELSE %s\n          END", src)
	return b.String()
}

// WhereClause renders " WHERE <predicate>" or the empty string. The
// predicate is opaque text; malformed SQL surfaces only at the database.
func WhereClause(spec *mapping.MigrationSpec) string {
	if spec.Where == "" {
		return ""
	}
	return " WHERE " + spec.Where
}

// RelatedInsertStatements renders one MERGE statement per related insert,
// keyed on the lookup key, reading from the given collection element.
func RelatedInsertStatements(spec *mapping.MigrationSpec, rowRef string) []string {
	stmts := make([]string, len(spec.RelatedInserts))
	for i, ri := range spec.RelatedInserts {
		stmts[i] = mergeStatement(ri, rowRef)
	}
	return stmts
}

func mergeStatement(ri mapping.RelatedInsert, rowRef string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MERGE INTO %s t\n", ri.Table)
	fmt.Fprintf(&b, "        USING (SELECT %s.%s AS key_val,\n", rowRef, ri.KeyColumn)
	fmt.Fprintf(&b, "                      %s.%s AS value_val\n", rowRef, ri.ValueColumn)
	b.WriteString("               FROM dual) s\n")
	fmt.Fprintf(&b, "        ON (t.%s = s.key_val)\n", LookupKeyColumn)
	b.WriteString("        WHEN MATCHED THEN\n")
	fmt.Fprintf(&b, "          UPDATE SET t.%s = s.value_val\n", LookupValueColumn)
	b.WriteString("        WHEN NOT MATCHED THEN\n")
	fmt.Fprintf(&b, "          INSERT (%s, %s)\n", LookupKeyColumn, LookupValueColumn)
	b.WriteString("          VALUES (s.key_val, s.value_val);")
	return b.String()
}
