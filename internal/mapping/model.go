package mapping

// MappingRow is one raw record of an uploaded mapping table, exactly as the
// file loader produced it. Nothing here is validated yet.
type MappingRow struct {
	SourceTable     string `json:"source_table"`
	TargetTable     string `json:"target_table"`
	SourceColumns   string `json:"source_columns"`
	TargetColumns   string `json:"target_columns"`
	Transformations string `json:"transformations"`
	WhereCondition  string `json:"where_condition"`
	RelatedInserts  string `json:"related_inserts"`
}

// ValuePair is one literal translation inside a MAP group. From is stored
// without its quotes; To is kept verbatim (quoted string or bare value) so it
// can be emitted into a CASE expression untouched.
type ValuePair struct {
	From string
	To   string
}

// ColumnMapping pairs one source column with one target column. A non-empty
// ValueMap means the value is translated through a CASE expression; pair
// order follows declaration order in the rule text.
type ColumnMapping struct {
	Source   string
	Target   string
	ValueMap []ValuePair
}

// RelatedInsert is a side-effect instruction populating a lookup table from
// source values during migration, parsed from KEY:table(key):value rules.
type RelatedInsert struct {
	Table       string
	KeyColumn   string
	ValueColumn string
}

// MigrationSpec is the fully parsed, validated unit driving code synthesis.
// SelectAll distinguishes "no columns were declared, migrate everything"
// from an explicitly empty column list. A spec is immutable once built.
type MigrationSpec struct {
	SourceTable    string
	TargetTable    string
	Columns        []ColumnMapping
	SelectAll      bool
	Where          string
	RelatedInserts []RelatedInsert
}
