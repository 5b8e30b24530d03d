// filepath: internal/repository/utils.go
package repository

import "database/sql"

// nullIfEmpty maps "" to NULL so optional columns stay NULL instead of
// accumulating empty strings.
func nullIfEmpty(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

// text unwraps a nullable TEXT column; NULL becomes "".
func text(ns sql.NullString) string {
	return ns.String
}
