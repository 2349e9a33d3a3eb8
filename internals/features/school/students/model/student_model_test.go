// file: internals/features/school/students/model/student_model_test.go
package model

import (
	"reflect"
	"strings"
	"testing"
)

// A re-imported roster row for a deleted student must insert, not trip the
// unique indexes, so both indexes are partial over live rows.
func TestUniqueIndexesExcludeSoftDeletedRows(t *testing.T) {
	typ := reflect.TypeOf(StudentModel{})
	for _, name := range []string{"StudentNumber", "StudentEmail"} {
		field, ok := typ.FieldByName(name)
		if !ok {
			t.Fatalf("field %s not found", name)
		}
		tag := field.Tag.Get("gorm")
		if !strings.Contains(tag, "uniqueIndex:") {
			t.Errorf("%s must carry a named unique index, tag %q", name, tag)
		}
		if !strings.Contains(tag, "where:student_deleted_at IS NULL") {
			t.Errorf("%s unique index must be partial over live rows, tag %q", name, tag)
		}
	}
}
