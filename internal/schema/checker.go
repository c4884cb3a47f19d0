package schema

import (
	"fmt"
	"strings"

	"migrt/internal/mapping"
)

// CheckResult lists everything wrong with one mapping row when held against
// the live source schema. An empty Findings list means the row checks out.
type CheckResult struct {
	RowIndex    int
	SourceTable string
	TargetTable string
	Findings    []string
}

// OK reports whether the row produced no findings.
func (r CheckResult) OK() bool {
	return len(r.Findings) == 0
}

// CheckRows validates mapping rows against the source schema: the row must
// parse, the source table must exist, and every referenced source column
// (mapped columns and related-insert key/value columns) must exist on it.
// Target-side objects live in a different database and are not checked.
func CheckRows(tables []*Table, rows []mapping.MappingRow) []CheckResult {
	byName := make(map[string]*Table, len(tables))
	for _, t := range tables {
		byName[strings.ToUpper(t.Name)] = t
	}

	results := make([]CheckResult, 0, len(rows))
	for i, row := range rows {
		res := CheckResult{
			RowIndex:    i + 1,
			SourceTable: strings.TrimSpace(row.SourceTable),
			TargetTable: strings.TrimSpace(row.TargetTable),
		}

		spec, err := mapping.ParseRow(row)
		if err != nil {
			res.Findings = append(res.Findings, err.Error())
		}

		if spec.SourceTable != "" {
			table, ok := byName[strings.ToUpper(spec.SourceTable)]
			if !ok {
				res.Findings = append(res.Findings,
					fmt.Sprintf("source table %s does not exist", spec.SourceTable))
			} else {
				res.Findings = append(res.Findings, checkColumns(table, spec)...)
			}
		}

		results = append(results, res)
	}
	return results
}

func checkColumns(table *Table, spec *mapping.MigrationSpec) []string {
	var findings []string

	for _, cm := range spec.Columns {
		if table.Column(cm.Source) == nil {
			findings = append(findings,
				fmt.Sprintf("source column %s.%s does not exist", table.Name, cm.Source))
		}
	}

	for _, ri := range spec.RelatedInserts {
		if table.Column(ri.KeyColumn) == nil {
			findings = append(findings,
				fmt.Sprintf("related-insert key column %s.%s does not exist", table.Name, ri.KeyColumn))
		}
		if table.Column(ri.ValueColumn) == nil {
			findings = append(findings,
				fmt.Sprintf("related-insert value column %s.%s does not exist", table.Name, ri.ValueColumn))
		}
	}

	return findings
}
