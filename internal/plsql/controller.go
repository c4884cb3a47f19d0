package plsql

import (
	"fmt"
	"strings"
)

// ControllerScript renders the migrate_all script that runs every generated
// package in order. Each call is guarded so one failing package does not
// stop the rest.
func ControllerScript(packages []Package) string {
	var b strings.Builder
	b.WriteString("SET SERVEROUTPUT ON;\n\n")
	b.WriteString("-- Main migration controller\n")
	b.WriteString("BEGIN\n")
	b.WriteString("  DBMS_OUTPUT.PUT_LINE('=== DATA MIGRATION START: ' || TO_CHAR(SYSDATE, 'DD-MON-YYYY HH24:MI:SS') || ' ===');\n")
	b.WriteString("  DBMS_OUTPUT.PUT_LINE('');\n\n")

	for i, pkg := range packages {
		fmt.Fprintf(&b, "  -- Migration %d: %s to %s\n", i+1, pkg.SourceTable, pkg.TargetTable)
		b.WriteString("  BEGIN\n")
		fmt.Fprintf(&b, "    %s.migrate_data;\n", pkg.Name)
		b.WriteString("    DBMS_OUTPUT.PUT_LINE('');\n")
		b.WriteString("  EXCEPTION\n")
		b.WriteString("    WHEN OTHERS THEN\n")
		fmt.Fprintf(&b, "      DBMS_OUTPUT.PUT_LINE('Error in %s: ' || SQLERRM);\n", pkg.Name)
		b.WriteString("      DBMS_OUTPUT.PUT_LINE('');\n")
		b.WriteString("  END;\n\n")
	}

	b.WriteString("  DBMS_OUTPUT.PUT_LINE('=== DATA MIGRATION END: ' || TO_CHAR(SYSDATE, 'DD-MON-YYYY HH24:MI:SS') || ' ===');\n")
	b.WriteString("END;\n/\n")
	return b.String()
}
