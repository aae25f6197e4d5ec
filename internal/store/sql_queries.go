package store

import "strings"

// columnList joins column names for use inside a RETURNING clause.
func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
