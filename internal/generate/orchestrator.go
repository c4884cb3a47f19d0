package generate

import (
	"fmt"

	"migrt/internal/mapping"
)

// Run drives the parse -> compile -> synthesize pipeline across all mapping
// rows, in input order. A failed row records an error result and processing
// continues; only an empty input sequence fails the whole call. onProgress,
// if non-nil, is called once per processed row.
func Run(rows []mapping.MappingRow, gen Generator, onProgress func()) ([]GenerationResult, Summary, error) {
	if len(rows) == 0 {
		return nil, Summary{}, fmt.Errorf("no mapping rows provided")
	}

	results := make([]GenerationResult, 0, len(rows))
	var summary Summary

	for i, row := range rows {
		results = append(results, generateRow(i+1, row, gen))
		if results[i].Failed() {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
		if onProgress != nil {
			onProgress()
		}
	}

	return results, summary, nil
}

func generateRow(index int, row mapping.MappingRow, gen Generator) GenerationResult {
	res := GenerationResult{
		RowIndex:    index,
		SourceTable: row.SourceTable,
		TargetTable: row.TargetTable,
	}

	spec, err := mapping.ParseRow(row)
	if err == nil {
		pkg, perr := gen.Generate(spec)
		if perr == nil {
			res.PackageName = pkg.Name
			res.Text = pkg.Text
			return res
		}
		err = perr
	}

	res.ErrKind = mapping.KindOf(err)
	res.ErrMessage = err.Error()
	res.ErrFragment = mapping.FragmentOf(err)
	return res
}
