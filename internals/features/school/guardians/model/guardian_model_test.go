// file: internals/features/school/guardians/model/guardian_model_test.go
package model

import (
	"reflect"
	"strings"
	"testing"
)

// A soft-deleted guardian must not block the roster upsert: the email index
// is partial over live rows, and the upsert's conflict target names the same
// predicate.
func TestGuardianEmailIndexExcludesSoftDeletedRows(t *testing.T) {
	field, ok := reflect.TypeOf(GuardianModel{}).FieldByName("GuardianEmail")
	if !ok {
		t.Fatal("field GuardianEmail not found")
	}
	tag := field.Tag.Get("gorm")
	if !strings.Contains(tag, "uniqueIndex:") {
		t.Errorf("GuardianEmail must carry a named unique index, tag %q", tag)
	}
	if !strings.Contains(tag, "where:guardian_deleted_at IS NULL") {
		t.Errorf("GuardianEmail unique index must be partial over live rows, tag %q", tag)
	}
}
