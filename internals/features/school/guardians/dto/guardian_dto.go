// file: internals/features/school/guardians/dto/guardian_dto.go
package dto

type UpdateGuardianRequest struct {
	Name       *string `json:"guardianName"       validate:"omitempty,max=160"`
	Email      *string `json:"guardianEmail"      validate:"omitempty,email,max=160"`
	Phone      *string `json:"guardianPhone"      validate:"omitempty,max=40"`
	Relation   *string `json:"guardianRelation"   validate:"omitempty,max=40"`
	Profession *string `json:"guardianProfession" validate:"omitempty,max=80"`
	Photo      *string `json:"guardianPhoto"      validate:"omitempty,max=2000"`
}
