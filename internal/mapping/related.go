package mapping

import (
	"errors"
	"regexp"
	"strings"
)

// keyRulePattern matches KEY:<table>(<keyColumn>):<valueColumn>. Identifier
// case is preserved; $ and # are legal in Oracle identifiers.
var keyRulePattern = regexp.MustCompile(
	`^KEY:\s*([A-Za-z_][A-Za-z0-9_$#]*)\s*\(\s*([A-Za-z_][A-Za-z0-9_$#]*)\s*\)\s*:\s*([A-Za-z_][A-Za-z0-9_$#]*)$`)

// ParseRelatedInserts parses related-insert rule text. Rules are separated
// by semicolons or newlines; every non-empty rule must match the KEY form.
func ParseRelatedInserts(raw string) ([]RelatedInsert, error) {
	var inserts []RelatedInsert
	var errs []error

	for _, rule := range splitRules(raw) {
		m := keyRulePattern.FindStringSubmatch(rule)
		if m == nil {
			errs = append(errs, newError(KindRelatedInsertSyntaxError, rule,
				"expected KEY:table(keyColumn):valueColumn"))
			continue
		}
		inserts = append(inserts, RelatedInsert{
			Table:       m[1],
			KeyColumn:   m[2],
			ValueColumn: m[3],
		})
	}

	if len(errs) > 0 {
		return inserts, errors.Join(errs...)
	}
	return inserts, nil
}

func splitRules(raw string) []string {
	var rules []string
	for _, line := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == '\n'
	}) {
		if rule := strings.TrimSpace(line); rule != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}
