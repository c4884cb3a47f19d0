package mapping

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadRows reads a mapping file into raw rows based on its extension.
// This is the thin I/O edge of the generator: rows come out unvalidated.
func LoadRows(path string) ([]MappingRow, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported mapping file type %q (want .csv or .json)", ext)
	}
}

func loadCSV(path string) ([]MappingRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // trailing optional columns may be omitted

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("mapping csv %s is empty", path)
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := header[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var rows []MappingRow
	for _, record := range records[1:] {
		rows = append(rows, MappingRow{
			SourceTable:     field(record, "source_table"),
			TargetTable:     field(record, "target_table"),
			SourceColumns:   field(record, "source_columns"),
			TargetColumns:   field(record, "target_columns"),
			Transformations: field(record, "transformations"),
			WhereCondition:  field(record, "where_condition"),
			RelatedInserts:  field(record, "related_inserts"),
		})
	}
	return rows, nil
}

func loadJSON(path string) ([]MappingRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var rows []MappingRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse mapping json %s: %w", path, err)
	}
	return rows, nil
}
