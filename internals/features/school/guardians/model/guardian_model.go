// file: internals/features/school/guardians/model/guardian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One guardian per student; rows are created by the student flows and share
// the student's lifecycle.
type GuardianModel struct {
	GuardianID uuid.UUID `gorm:"column:guardian_id;type:uuid;default:gen_random_uuid();primaryKey" json:"guardian_id"`

	GuardianName string `gorm:"column:guardian_name;type:varchar(160);not null" json:"guardianName"`

	// Unique among live rows only; a soft-deleted guardian releases its email.
	GuardianEmail string `gorm:"column:guardian_email;type:varchar(160);not null;uniqueIndex:uq_guardians_guardian_email,where:guardian_deleted_at IS NULL" json:"guardianEmail"`

	GuardianPassword string `gorm:"column:guardian_password;type:varchar(100);not null" json:"-"`

	GuardianPhone      string `gorm:"column:guardian_phone;type:varchar(40);not null"       json:"guardianPhone"`
	GuardianRelation   string `gorm:"column:guardian_relation;type:varchar(40);not null"    json:"guardianRelation"`
	GuardianProfession string `gorm:"column:guardian_profession;type:varchar(80);not null"  json:"guardianProfession"`

	GuardianPhoto string `gorm:"column:guardian_photo;type:text;not null;default:'N/A'" json:"guardianPhoto"`

	GuardianCreatedAt time.Time      `gorm:"column:guardian_created_at;type:timestamptz;not null;autoCreateTime" json:"guardian_created_at"`
	GuardianUpdatedAt time.Time      `gorm:"column:guardian_updated_at;type:timestamptz;not null;autoUpdateTime" json:"guardian_updated_at"`
	GuardianDeletedAt gorm.DeletedAt `gorm:"column:guardian_deleted_at;index"                                    json:"guardian_deleted_at,omitempty"`
}

func (GuardianModel) TableName() string { return "guardians" }
