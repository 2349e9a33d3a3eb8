// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"
)

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError translates a Postgres SQLSTATE into an HTTP status + safe message.
// Driver internals are never forwarded to the caller.
func MapPGError(err error) (int, string) {
	// 23P01 = exclusion_violation
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Schedule clash: time range overlap."
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23505":
			return http.StatusConflict, "Duplicate data (unique violation)."
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
