package domain

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genRecords generates lists of flat JSON-like objects with identifier keys.
func genRecords() gopter.Gen {
	genRecord := gen.MapOf(gen.Identifier(), gen.AlphaString()).Map(func(m map[string]string) map[string]any {
		record := make(map[string]any, len(m))
		for key, value := range m {
			record[key] = value
		}
		return record
	})
	return gen.SliceOf(genRecord)
}

// For any list of objects, the flattened frame has exactly one row per
// object and its columns cover every key present in any object.
func TestFlattenProperty_RowsAndColumnCoverage(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("one row per record, columns cover all keys", prop.ForAll(
		func(records []map[string]any) bool {
			frame := Flatten(records)

			if frame.NumRows() != len(records) {
				return false
			}

			columns := make(map[string]bool, len(frame.Columns))
			for _, column := range frame.Columns {
				columns[column] = true
			}
			for _, record := range records {
				for key := range record {
					if !columns[key] {
						return false
					}
				}
			}
			return true
		},
		genRecords(),
	))

	properties.TestingRun(t)
}

// For any list of objects, every cell holds either the record's value for
// that column or nil when the record lacks the key.
func TestFlattenProperty_CellFidelity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("cells match record values", prop.ForAll(
		func(records []map[string]any) bool {
			frame := Flatten(records)

			for i, record := range records {
				for j, column := range frame.Columns {
					value, present := record[column]
					cell := frame.Rows[i][j]
					if present && !reflect.DeepEqual(cell, value) {
						return false
					}
					if !present && cell != nil {
						return false
					}
				}
			}
			return true
		},
		genRecords(),
	))

	properties.TestingRun(t)
}

// Flattening the same input twice yields the same frame.
func TestFlattenProperty_Deterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("repeat flatten is identical", prop.ForAll(
		func(records []map[string]any) bool {
			first := Flatten(records)
			second := Flatten(records)
			return reflect.DeepEqual(first, second)
		},
		genRecords(),
	))

	properties.TestingRun(t)
}
