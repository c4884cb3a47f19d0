// Package output writes generated scripts and their manifest to disk. It is
// the consuming edge of the generator: nothing here feeds back into code
// synthesis.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"migrt/internal/generate"
)

const indexFileName = "file_index.json"

// ManifestEntry describes one written script. Field names follow the index
// file format consumed by downstream tooling.
type ManifestEntry struct {
	Filename    string `json:"filename"`
	SourceTable string `json:"source_table"`
	TargetTable string `json:"target_table"`
	Timestamp   string `json:"timestamp"`
}

var fileSanitizer = regexp.MustCompile(`[^\w]`)

// Timestamp returns the filename timestamp for one generation run.
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// WriteScripts writes one .sql file per successful result plus the
// controller script, and returns manifest entries for everything written.
func WriteScripts(dir, timestamp string, results []generate.GenerationResult, controller string) ([]ManifestEntry, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	var entries []ManifestEntry
	for _, res := range results {
		if res.Failed() {
			continue
		}
		filename := fmt.Sprintf("%s_%s_to_%s.sql",
			timestamp,
			fileSanitizer.ReplaceAllString(res.SourceTable, "_"),
			fileSanitizer.ReplaceAllString(res.TargetTable, "_"))
		if err := os.WriteFile(filepath.Join(dir, filename), []byte(res.Text), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", filename, err)
		}
		entries = append(entries, ManifestEntry{
			Filename:    filename,
			SourceTable: res.SourceTable,
			TargetTable: res.TargetTable,
			Timestamp:   timestamp,
		})
	}

	if controller != "" && len(entries) > 0 {
		filename := fmt.Sprintf("%s_migrate_all.sql", timestamp)
		if err := os.WriteFile(filepath.Join(dir, filename), []byte(controller), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", filename, err)
		}
		entries = append(entries, ManifestEntry{
			Filename:    filename,
			SourceTable: "ALL",
			TargetTable: "ALL",
			Timestamp:   timestamp,
		})
	}

	return entries, nil
}

// AppendIndex merges new entries into the directory's JSON index, keeping
// entries from previous runs.
func AppendIndex(dir string, entries []ManifestEntry) error {
	path := filepath.Join(dir, indexFileName)

	var existing []ManifestEntry
	if data, err := os.ReadFile(path); err == nil {
		// A corrupt index is rebuilt rather than fatal.
		_ = json.Unmarshal(data, &existing)
	}

	data, err := json.MarshalIndent(append(existing, entries...), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal file index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file index: %w", err)
	}
	return nil
}
