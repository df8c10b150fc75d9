package activity

import (
	"sort"
	"strings"
)

// FieldChange is one changed field in a before/after snapshot pair.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// Diff compares two stringified field snapshots and returns the fields whose
// values differ, in field-name order. Fields present on only one side count
// as changed from or to the empty string. Snapshots never include the
// created/updated timestamps, so a save that touched nothing but timestamps
// diffs empty.
func Diff(before, after map[string]string) []FieldChange {
	seen := make(map[string]struct{}, len(before)+len(after))
	for field := range before {
		seen[field] = struct{}{}
	}
	for field := range after {
		seen[field] = struct{}{}
	}

	fields := make([]string, 0, len(seen))
	for field := range seen {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var changes []FieldChange
	for _, field := range fields {
		if before[field] != after[field] {
			changes = append(changes, FieldChange{
				Field: field,
				Old:   before[field],
				New:   after[field],
			})
		}
	}
	return changes
}

// Humanize turns a snake_case field name into a sentence-case label,
// e.g. "first_name" -> "First name".
func Humanize(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
