package mapping_test

import (
	"testing"

	"migrt/internal/mapping"
)

func TestParseRow_MissingTargetTable(t *testing.T) {
	spec, err := mapping.ParseRow(mapping.MappingRow{SourceTable: "CUSTOMERS_OLD"})
	if err == nil {
		t.Fatal("expected an error for a missing target_table")
	}
	if kind := mapping.KindOf(err); kind != mapping.KindMissingRequiredField {
		t.Errorf("expected MissingRequiredField, got %s", kind)
	}
	if spec.SourceTable != "CUSTOMERS_OLD" {
		t.Errorf("partial spec should keep the source table, got %q", spec.SourceTable)
	}
}

func TestParseRow_ColumnCountMismatch(t *testing.T) {
	spec, err := mapping.ParseRow(mapping.MappingRow{
		SourceTable:   "A",
		TargetTable:   "B",
		SourceColumns: "ID,NAME",
		TargetColumns: "ID",
	})
	if kind := mapping.KindOf(err); kind != mapping.KindColumnCountMismatch {
		t.Fatalf("expected ColumnCountMismatch, got %s (err: %v)", kind, err)
	}
	if len(spec.Columns) != 0 {
		t.Errorf("expected zero generated columns, got %d", len(spec.Columns))
	}
}

func TestParseRow_PositionalDefaults(t *testing.T) {
	spec, err := mapping.ParseRow(mapping.MappingRow{
		SourceTable:   "A",
		TargetTable:   "B",
		SourceColumns: " ID , NAME ",
		TargetColumns: "ID,FULL_NAME",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.SelectAll {
		t.Error("declared columns must not produce a select-all spec")
	}
	if len(spec.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(spec.Columns))
	}
	if spec.Columns[1].Source != "NAME" || spec.Columns[1].Target != "FULL_NAME" {
		t.Errorf("positional pairing broken: %+v", spec.Columns[1])
	}
}

func TestParseRow_NoColumnsMeansSelectAll(t *testing.T) {
	spec, err := mapping.ParseRow(mapping.MappingRow{SourceTable: "A", TargetTable: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !spec.SelectAll {
		t.Error("absent column lists must yield a select-all spec")
	}
	if len(spec.Columns) != 0 {
		t.Errorf("select-all spec should have no explicit columns, got %d", len(spec.Columns))
	}
}

func TestParseRow_SourceColumnsOnly(t *testing.T) {
	spec, err := mapping.ParseRow(mapping.MappingRow{
		SourceTable:   "A",
		TargetTable:   "B",
		SourceColumns: "ID,NAME",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spec.Columns) != 2 || spec.Columns[1].Target != "NAME" {
		t.Errorf("source-only lists should map identity targets, got %+v", spec.Columns)
	}
}

func TestParseRow_WhereStoredVerbatim(t *testing.T) {
	spec, err := mapping.ParseRow(mapping.MappingRow{
		SourceTable:    "A",
		TargetTable:    "B",
		WhereCondition: "STATUS <> 'D'",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Where != "STATUS <> 'D'" {
		t.Errorf("predicate must be kept verbatim, got %q", spec.Where)
	}
}

func TestParseRow_BadTransformationKeepsParsingRelatedInserts(t *testing.T) {
	spec, err := mapping.ParseRow(mapping.MappingRow{
		SourceTable:     "A",
		TargetTable:     "B",
		SourceColumns:   "ID,NAME",
		TargetColumns:   "ID,NAME",
		Transformations: "NAME FULL_NAME", // missing arrow
		RelatedInserts:  "KEY:migrt_key(ID):NAME",
	})
	if kind := mapping.KindOf(err); kind != mapping.KindTransformationSyntaxError {
		t.Fatalf("expected TransformationSyntaxError, got %s (err: %v)", kind, err)
	}
	if len(spec.RelatedInserts) != 1 {
		t.Errorf("related inserts should still be parsed on a transformation error, got %d", len(spec.RelatedInserts))
	}
	if frag := mapping.FragmentOf(err); frag != "NAME FULL_NAME" {
		t.Errorf("error should carry the offending fragment, got %q", frag)
	}
}
