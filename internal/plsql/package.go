package plsql

import (
	"fmt"
	"regexp"
	"strings"

	"migrt/internal/mapping"
)

// Package is one generated unit of migration code.
type Package struct {
	Name        string
	SourceTable string
	TargetTable string
	Text        string
}

var identSanitizer = regexp.MustCompile(`[^a-z0-9_]`)

// PackageName derives the deterministic package name for a target table.
func PackageName(cfg Config, targetTable string) string {
	cfg = cfg.withDefaults()
	name := identSanitizer.ReplaceAllString(strings.ToLower(targetTable), "_")
	return cfg.PackagePrefix + name
}

// Synthesize assembles a complete migration package from a spec, in fixed
// section order: package spec, package body with a bulk fetch loop, FORALL
// insert, per-batch related MERGE statements, exception handler with
// ROLLBACK, final COMMIT, and an invocation block.
//
// Once the spec passed the empty check this cannot fail: it is a pure
// rendering step.
func Synthesize(spec *mapping.MigrationSpec, cfg Config) (Package, error) {
	cfg = cfg.withDefaults()

	src := strings.TrimSpace(spec.SourceTable)
	tgt := strings.TrimSpace(spec.TargetTable)
	if src == "" || tgt == "" || strings.EqualFold(src, tgt) {
		return Package{}, &mapping.Error{
			Kind:    mapping.KindEmptySpec,
			Message: fmt.Sprintf("source %q and target %q do not describe a migration", src, tgt),
		}
	}

	pkg := Package{
		Name:        PackageName(cfg, tgt),
		SourceTable: src,
		TargetTable: tgt,
	}

	var b strings.Builder
	b.WriteString("SET SERVEROUTPUT ON;\n\n")

	fmt.Fprintf(&b, "-- Data migration package for %s to %s\n", src, tgt)
	fmt.Fprintf(&b, "CREATE OR REPLACE PACKAGE %s AS\n", pkg.Name)
	b.WriteString("  -- Main migration procedure\n")
	b.WriteString("  PROCEDURE migrate_data;\n")
	fmt.Fprintf(&b, "END %s;\n/\n\n", pkg.Name)

	fmt.Fprintf(&b, "CREATE OR REPLACE PACKAGE BODY %s AS\n\n", pkg.Name)
	fmt.Fprintf(&b, "  c_batch_size CONSTANT PLS_INTEGER := %d;\n\n", cfg.BatchSize)
	b.WriteString("  PROCEDURE migrate_data IS\n")
	writeDeclarations(&b, spec)
	b.WriteString("  BEGIN\n")
	fmt.Fprintf(&b, "    DBMS_OUTPUT.PUT_LINE('Starting migration from %s to %s: ' || TO_CHAR(SYSDATE, 'DD-MON-YYYY HH24:MI:SS'));\n\n", src, tgt)
	b.WriteString("    OPEN c_source;\n")
	b.WriteString("    LOOP\n")
	b.WriteString("      FETCH c_source BULK COLLECT INTO v_rows LIMIT c_batch_size;\n")
	b.WriteString("      EXIT WHEN v_rows.COUNT = 0;\n\n")
	writeForallInsert(&b, spec)
	writeRelatedInserts(&b, spec)
	b.WriteString("      v_total := v_total + v_rows.COUNT;\n")
	b.WriteString("      DBMS_OUTPUT.PUT_LINE('Migrated batch of ' || v_rows.COUNT || ' rows (total ' || v_total || ').');\n")
	b.WriteString("    END LOOP;\n")
	b.WriteString("    CLOSE c_source;\n\n")
	b.WriteString("    COMMIT;\n")
	b.WriteString("    DBMS_OUTPUT.PUT_LINE('Migration completed: ' || v_total || ' rows at ' || TO_CHAR(SYSDATE, 'DD-MON-YYYY HH24:MI:SS'));\n")
	b.WriteString("  EXCEPTION\n")
	b.WriteString("    WHEN OTHERS THEN\n")
	b.WriteString("      v_error_message := SQLERRM;\n")
	b.WriteString("      DBMS_OUTPUT.PUT_LINE('Error during migration near row ' || v_total || ': ' || v_error_message);\n")
	b.WriteString("      IF c_source%ISOPEN THEN\n")
	b.WriteString("        CLOSE c_source;\n")
	b.WriteString("      END IF;\n")
	b.WriteString("      ROLLBACK;\n")
	b.WriteString("      RAISE;\n")
	b.WriteString("  END migrate_data;\n\n")
	fmt.Fprintf(&b, "END %s;\n/\n\n", pkg.Name)

	b.WriteString("-- Execute migration\n")
	b.WriteString("BEGIN\n")
	fmt.Fprintf(&b, "  %s.migrate_data;\n", pkg.Name)
	b.WriteString("END;\n/\n")

	pkg.Text = b.String()
	return pkg, nil
}

func writeDeclarations(b *strings.Builder, spec *mapping.MigrationSpec) {
	if spec.SelectAll {
		fmt.Fprintf(b, "    TYPE t_source_tab IS TABLE OF %s%%ROWTYPE;\n\n", spec.SourceTable)
	} else {
		b.WriteString("    TYPE t_source_rec IS RECORD (\n")
		for i, cm := range spec.Columns {
			sep := ","
			if i == len(spec.Columns)-1 {
				sep = ""
			}
			fmt.Fprintf(b, "      %s %s%s\n", cm.Source, InferOracleType(cm.Source), sep)
		}
		b.WriteString("    );\n")
		b.WriteString("    TYPE t_source_tab IS TABLE OF t_source_rec;\n\n")
	}

	b.WriteString("    CURSOR c_source IS\n")
	fmt.Fprintf(b, "      SELECT %s\n", SelectList(spec))
	fmt.Fprintf(b, "      FROM %s%s;\n\n", spec.SourceTable, WhereClause(spec))

	b.WriteString("    v_rows          t_source_tab;\n")
	b.WriteString("    v_total         PLS_INTEGER := 0;\n")
	b.WriteString("    v_error_message VARCHAR2(4000);\n")
}

func writeForallInsert(b *strings.Builder, spec *mapping.MigrationSpec) {
	b.WriteString("      FORALL i IN 1..v_rows.COUNT\n")
	if spec.SelectAll {
		fmt.Fprintf(b, "        INSERT INTO %s VALUES v_rows(i);\n\n", spec.TargetTable)
		return
	}

	fmt.Fprintf(b, "        INSERT INTO %s (\n", spec.TargetTable)
	cols := InsertColumns(spec)
	for i, col := range cols {
		sep := ","
		if i == len(cols)-1 {
			sep = ""
		}
		fmt.Fprintf(b, "          %s%s\n", col, sep)
	}
	b.WriteString("        ) VALUES (\n")
	exprs := ValueExpressions(spec, "v_rows(i)")
	for i, expr := range exprs {
		sep := ","
		if i == len(exprs)-1 {
			sep = ""
		}
		fmt.Fprintf(b, "          %s%s\n", expr, sep)
	}
	b.WriteString("        );\n\n")
}

func writeRelatedInserts(b *strings.Builder, spec *mapping.MigrationSpec) {
	if len(spec.RelatedInserts) == 0 {
		return
	}

	b.WriteString("      -- Refresh lookup tables for this batch\n")
	b.WriteString("      FOR i IN 1..v_rows.COUNT LOOP\n")
	for _, stmt := range RelatedInsertStatements(spec, "v_rows(i)") {
		fmt.Fprintf(b, "        %s\n", stmt)
	}
	b.WriteString("      END LOOP;\n\n")
}
