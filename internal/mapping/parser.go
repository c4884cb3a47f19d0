package mapping

import (
	"errors"
	"strings"
)

// ParseRow turns one raw mapping row into a MigrationSpec.
//
// A failed field does not stop parsing of the remaining fields: the returned
// spec is filled in as far as possible so callers can still report what the
// row meant, but any non-nil error marks the whole row failed.
func ParseRow(row MappingRow) (*MigrationSpec, error) {
	var errs []error

	spec := &MigrationSpec{
		SourceTable: strings.TrimSpace(row.SourceTable),
		TargetTable: strings.TrimSpace(row.TargetTable),
		Where:       strings.TrimSpace(row.WhereCondition),
	}

	if spec.SourceTable == "" {
		errs = append(errs, newError(KindMissingRequiredField, "", "source_table is empty"))
	}
	if spec.TargetTable == "" {
		errs = append(errs, newError(KindMissingRequiredField, "", "target_table is empty"))
	}

	srcCols := splitList(row.SourceColumns)
	tgtCols := splitList(row.TargetColumns)
	declared := len(srcCols) > 0 || len(tgtCols) > 0

	// A source list with no target list means identity targets. The reverse
	// has no source to read from and counts as a cardinality error below.
	if len(srcCols) > 0 && len(tgtCols) == 0 {
		tgtCols = srcCols
	}

	countOK := true
	if declared && len(srcCols) != len(tgtCols) {
		countOK = false
		errs = append(errs, newError(KindColumnCountMismatch, "",
			"source_columns has %d entries, target_columns has %d", len(srcCols), len(tgtCols)))
	}

	spec.SelectAll = !declared
	if declared && countOK {
		spec.Columns = make([]ColumnMapping, len(srcCols))
		for i := range srcCols {
			spec.Columns[i] = ColumnMapping{Source: srcCols[i], Target: tgtCols[i]}
		}
	}

	// Transformations override the positional defaults. Skipped entirely on a
	// cardinality error: compiling against a broken column set would only
	// produce misleading follow-up errors.
	if raw := strings.TrimSpace(row.Transformations); raw != "" && countOK {
		cols, err := CompileTransformations(raw, spec.Columns, declared)
		spec.Columns = cols
		if err != nil {
			errs = append(errs, err)
		}
		if !declared && len(cols) > 0 {
			spec.SelectAll = false
		}
	}

	if raw := strings.TrimSpace(row.RelatedInserts); raw != "" {
		inserts, err := ParseRelatedInserts(raw)
		spec.RelatedInserts = inserts
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return spec, errors.Join(errs...)
	}
	return spec, nil
}

// splitList splits a comma list, trimming every element and dropping empties.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
