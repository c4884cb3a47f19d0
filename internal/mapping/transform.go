package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// CompileTransformations applies the transformation rule text on top of the
// positional column pairs in base and returns the effective mapping list.
//
// Grammar, comma separated at the top level (commas inside a (...) group are
// part of the group):
//
//	SOURCE->TARGET
//	SOURCE->TARGET (MAP: 'a'->1,'b'->'X',...)
//
// When declared is true, a clause naming a source column outside base fails
// with UnknownSourceColumn; otherwise the clause adds the column. A later
// clause for the same source column replaces the earlier one.
func CompileTransformations(raw string, base []ColumnMapping, declared bool) ([]ColumnMapping, error) {
	cols := make([]ColumnMapping, len(base))
	copy(cols, base)

	var errs []error
	for _, clause := range splitTopLevel(raw) {
		cm, err := parseClause(clause)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		idx := -1
		for i := range cols {
			if cols[i].Source == cm.Source {
				idx = i
				break
			}
		}
		if idx >= 0 {
			cols[idx] = cm // last clause wins
		} else if declared {
			errs = append(errs, newError(KindUnknownSourceColumn, clause,
				"source column %q is not in source_columns", cm.Source))
		} else {
			cols = append(cols, cm)
		}
	}

	if len(errs) > 0 {
		return cols, errors.Join(errs...)
	}
	return cols, nil
}

// FormatTransformations serializes the non-identity mappings of a spec back
// into the clause grammar. Feeding the result through the compiler again
// yields the same mappings.
func FormatTransformations(spec *MigrationSpec) string {
	var clauses []string
	for _, cm := range spec.Columns {
		if cm.Source == cm.Target && len(cm.ValueMap) == 0 {
			continue
		}
		clause := cm.Source + "->" + cm.Target
		if len(cm.ValueMap) > 0 {
			pairs := make([]string, len(cm.ValueMap))
			for i, p := range cm.ValueMap {
				pairs[i] = fmt.Sprintf("'%s'->%s", p.From, p.To)
			}
			clause += " (MAP: " + strings.Join(pairs, ",") + ")"
		}
		clauses = append(clauses, clause)
	}
	return strings.Join(clauses, ",")
}

func parseClause(clause string) (ColumnMapping, error) {
	arrow := strings.Index(clause, "->")
	if arrow < 0 {
		return ColumnMapping{}, newError(KindTransformationSyntaxError, clause, "missing '->'")
	}

	cm := ColumnMapping{Source: strings.TrimSpace(clause[:arrow])}
	rest := strings.TrimSpace(clause[arrow+2:])
	if cm.Source == "" {
		return ColumnMapping{}, newError(KindTransformationSyntaxError, clause, "empty source column")
	}

	paren := strings.Index(rest, "(")
	if paren < 0 {
		cm.Target = rest
		if cm.Target == "" {
			return ColumnMapping{}, newError(KindTransformationSyntaxError, clause, "empty target column")
		}
		return cm, nil
	}

	cm.Target = strings.TrimSpace(rest[:paren])
	if cm.Target == "" {
		return ColumnMapping{}, newError(KindTransformationSyntaxError, clause, "empty target column")
	}

	group := strings.TrimSpace(rest[paren:])
	if !strings.HasSuffix(group, ")") {
		return ColumnMapping{}, newError(KindTransformationSyntaxError, clause, "unterminated MAP group")
	}
	body := strings.TrimSpace(group[1 : len(group)-1])
	if !strings.HasPrefix(body, "MAP:") {
		return ColumnMapping{}, newError(KindTransformationSyntaxError, clause, "expected MAP: group")
	}

	pairs, err := parseValueMap(strings.TrimSpace(body[len("MAP:"):]), clause)
	if err != nil {
		return ColumnMapping{}, err
	}
	cm.ValueMap = pairs
	return cm, nil
}

func parseValueMap(body, clause string) ([]ValuePair, error) {
	if body == "" {
		return nil, newError(KindTransformationSyntaxError, clause, "empty MAP group")
	}

	var pairs []ValuePair
	for _, item := range splitQuoted(body) {
		item = strings.TrimSpace(item)
		arrow := strings.Index(item, "->")
		if arrow < 0 {
			return nil, newError(KindTransformationSyntaxError, item, "MAP pair missing '->'")
		}

		from := strings.TrimSpace(item[:arrow])
		to := strings.TrimSpace(item[arrow+2:])
		if len(from) < 2 || !strings.HasPrefix(from, "'") || !strings.HasSuffix(from, "'") {
			return nil, newError(KindTransformationSyntaxError, item, "MAP source literal must be quoted")
		}
		if to == "" {
			return nil, newError(KindTransformationSyntaxError, item, "MAP pair has no value")
		}
		pairs = append(pairs, ValuePair{From: from[1 : len(from)-1], To: to})
	}
	return pairs, nil
}

// splitTopLevel splits on commas that are not nested inside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	var b strings.Builder
	depth := 0

	for _, r := range s {
		switch {
		case r == '(':
			depth++
			b.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			b.WriteRune(r)
		case r == ',' && depth == 0:
			parts = appendPart(parts, &b)
		default:
			b.WriteRune(r)
		}
	}
	return appendPart(parts, &b)
}

// splitQuoted splits on commas outside single-quoted literals.
func splitQuoted(s string) []string {
	var parts []string
	var b strings.Builder
	quoted := false

	for _, r := range s {
		switch {
		case r == '\'':
			quoted = !quoted
			b.WriteRune(r)
		case r == ',' && !quoted:
			parts = appendPart(parts, &b)
		default:
			b.WriteRune(r)
		}
	}
	return appendPart(parts, &b)
}

func appendPart(parts []string, b *strings.Builder) []string {
	if p := strings.TrimSpace(b.String()); p != "" {
		parts = append(parts, p)
	}
	b.Reset()
	return parts
}
