package constants

const (
	RoleAdmin    = "admin"
	RoleTeacher  = "teacher"
	RoleStudent  = "student"
	RoleGuardian = "guardian"
)
