package cmd

import (
	"strings"
	"testing"
)

func TestSplitScript(t *testing.T) {
	text := "SET SERVEROUTPUT ON;\n\n" +
		"CREATE OR REPLACE PACKAGE p AS\nEND p;\n/\n\n" +
		"CREATE OR REPLACE PACKAGE BODY p AS\nEND p;\n/\n\n" +
		"BEGIN\n  p.migrate_data;\nEND;\n/\n"

	stmts := splitScript(text)
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d: %q", len(stmts), stmts)
	}
	if !strings.HasPrefix(stmts[0], "CREATE OR REPLACE PACKAGE p") {
		t.Errorf("SQL*Plus directive should be dropped, got %q", stmts[0])
	}
	if !strings.HasPrefix(stmts[2], "BEGIN") {
		t.Errorf("invocation block lost: %q", stmts[2])
	}
}

func TestSplitScript_NoTrailingSlash(t *testing.T) {
	stmts := splitScript("BEGIN\n  NULL;\nEND;")
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
}
