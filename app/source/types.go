package source

import (
	"fmt"
	"strings"
)

// Canonical field names after header normalization.
const (
	FieldTitle        = "title"
	FieldStartDate    = "start date"
	FieldStartTime    = "start time"
	FieldEndDate      = "end date"
	FieldEndTime      = "end time"
	FieldLocation     = "location"
	FieldDescription  = "description"
	FieldURL          = "url"
	FieldCategory     = "category"
	FieldTransparency = "transparent"
	FieldUID          = "uid"
)

// Row is a single input record keyed by normalized field name. Lookup of a
// field the source never carried returns the empty string.
type Row map[string]string

func (r Row) Get(field string) string {
	return r[field]
}

// RowSource yields the full ordered row sequence of an external tabular
// source. Implementations fail fast with MissingColumnsError when a required
// column is absent, before any row is produced.
type RowSource interface {
	Read() ([]Row, error)
}

// MissingColumnsError reports required columns absent from the source
// header. It aborts the whole run before any document is written.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("required columns missing from source: %s", strings.Join(e.Columns, ", "))
}

// requiredFields maps canonical field names to the display names reported in
// a MissingColumnsError.
var requiredFields = map[string]string{
	FieldTitle:     "Title",
	FieldStartDate: "Start Date",
}

// defaultAliases maps alternative normalized header names to canonical
// fields. "Subject" is the spreadsheet-world synonym for "Title".
var defaultAliases = map[string]string{
	"subject": FieldTitle,
}

// NormalizeFieldName lowercases a header cell and collapses internal runs of
// whitespace, so "  Start   Date " and "start date" address the same field.
func NormalizeFieldName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// normalizeHeader resolves raw header cells to canonical field names,
// applying the built-in aliases plus any caller-supplied ones.
func normalizeHeader(raw []string, aliases map[string]string) []string {
	fields := make([]string, len(raw))
	for i, cell := range raw {
		field := NormalizeFieldName(cell)
		if canonical, ok := aliases[field]; ok {
			field = canonical
		} else if canonical, ok := defaultAliases[field]; ok {
			field = canonical
		}
		fields[i] = field
	}
	return fields
}

// checkRequired returns a MissingColumnsError when the normalized header
// lacks a required field.
func checkRequired(fields []string) error {
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f] = true
	}

	var missing []string
	for _, field := range []string{FieldTitle, FieldStartDate} {
		if !present[field] {
			missing = append(missing, requiredFields[field])
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}
