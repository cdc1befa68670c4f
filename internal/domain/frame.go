package domain

import (
	"fmt"
	"sort"
)

// Frame is a row/column data structure for dashboard widgets: one row per
// record, columns derived from the union of flattened field keys. It is a
// convenience transform over decoded JSON objects, decoupled from the
// query path - any list of nested objects can be flattened into a Frame.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// Flatten builds a Frame from a list of nested JSON objects.
// Nested object keys are joined with "." (so {"fields":{"summary":"s"}}
// becomes column "fields.summary"). Columns are ordered by first
// appearance across records; keys within a record are walked in sorted
// order so the result is deterministic. Cells for keys absent from a
// record are nil. Non-object values, including arrays, are kept as-is.
func Flatten(records []map[string]any) *Frame {
	frame := &Frame{}

	// Flatten every record first so the full column set is known before
	// rows are laid out.
	flattened := make([]map[string]any, 0, len(records))
	seen := make(map[string]bool)
	for _, record := range records {
		flat := make(map[string]any)
		flattenInto(flat, "", record)
		flattened = append(flattened, flat)

		keys := make([]string, 0, len(flat))
		for key := range flat {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if !seen[key] {
				seen[key] = true
				frame.Columns = append(frame.Columns, key)
			}
		}
	}

	// Lay out one row per record, aligned to the column set.
	frame.Rows = make([][]any, len(flattened))
	for i, flat := range flattened {
		row := make([]any, len(frame.Columns))
		for j, column := range frame.Columns {
			row[j] = flat[column]
		}
		frame.Rows[i] = row
	}

	return frame
}

// flattenInto walks a nested object, writing leaf values into flat under
// dot-joined keys.
func flattenInto(flat map[string]any, prefix string, value map[string]any) {
	for key, v := range value {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(flat, name, nested)
			continue
		}
		flat[name] = v
	}
}

// NumRows returns the number of rows in the frame.
func (f *Frame) NumRows() int {
	return len(f.Rows)
}

// NumCols returns the number of columns in the frame.
func (f *Frame) NumCols() int {
	return len(f.Columns)
}

// Column returns the values of the named column, one per row, and whether
// the column exists.
func (f *Frame) Column(name string) ([]any, bool) {
	for i, column := range f.Columns {
		if column == name {
			values := make([]any, len(f.Rows))
			for j, row := range f.Rows {
				values[j] = row[i]
			}
			return values, true
		}
	}
	return nil, false
}

// Records converts the frame back into a list of flat objects, one per
// row, omitting nil cells.
func (f *Frame) Records() []map[string]any {
	records := make([]map[string]any, len(f.Rows))
	for i, row := range f.Rows {
		record := make(map[string]any)
		for j, column := range f.Columns {
			if row[j] != nil {
				record[column] = row[j]
			}
		}
		records[i] = record
	}
	return records
}

// CellString renders a single cell for display. Nil cells render empty.
func (f *Frame) CellString(row, col int) string {
	value := f.Rows[row][col]
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
