// Package builder provides internal helper functions and types
// for configuring vertex label schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a vertex label from its zero-based index within one
// constructor. It must be pure: the same idx always yields the same label.
type LabelFn func(idx int) string

// DecimalLabel returns the one-based decimal position, e.g. 0→"1", 41→"42",
// so labels match vertex ids of a freshly built graph.
// Never panics.
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx + 1)
}

// ExcelColumnLabel returns the spreadsheet column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabel: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabel returns prefix + one-based decimal position, e.g. "v1", "v2", ...
func PrefixLabel(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx+1)
	}
}

// WithExcelColumnLabels sets the label scheme to ExcelColumnLabel.
func WithExcelColumnLabels() BuilderOption {
	return WithLabelScheme(ExcelColumnLabel)
}

// WithPrefixLabels sets the label scheme to PrefixLabel(prefix).
func WithPrefixLabels(prefix string) BuilderOption {
	return WithLabelScheme(PrefixLabel(prefix))
}
