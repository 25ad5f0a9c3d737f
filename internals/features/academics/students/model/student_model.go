// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM student_status (mirror of the DB enum) ----------------------------
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
)

// SchoolStudent is owned by roster management; this core only reads it.
// Grade levels arrive inconsistently cased ("Grade 10" / "grade 10"), so
// every grade comparison goes through LOWER() — see the eligibility resolver.
type SchoolStudent struct {
	// PK
	SchoolStudentID uuid.UUID `json:"school_student_id" gorm:"column:school_student_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	SchoolStudentSchoolID uuid.UUID `json:"school_student_school_id" gorm:"column:school_student_school_id;type:uuid;not null;index:idx_school_students_school_grade,priority:1"`

	// Display code shown on receipts and lists
	SchoolStudentCode string `json:"school_student_code" gorm:"column:school_student_code;type:varchar(30);not null"`

	SchoolStudentFirstName string `json:"school_student_first_name" gorm:"column:school_student_first_name;type:varchar(60);not null"`
	SchoolStudentLastName  string `json:"school_student_last_name" gorm:"column:school_student_last_name;type:varchar(60);not null"`

	// Free text; case-insensitive semantics (functional index LOWER() in migration SQL)
	SchoolStudentGradeLevel string `json:"school_student_grade_level" gorm:"column:school_student_grade_level;type:varchar(30);not null;index:idx_school_students_school_grade,priority:2"`

	SchoolStudentStatus StudentStatus `json:"school_student_status" gorm:"column:school_student_status;type:varchar(12);not null;default:'active';index:idx_school_students_status"`

	// Timestamps
	SchoolStudentCreatedAt time.Time      `json:"school_student_created_at" gorm:"column:school_student_created_at;type:timestamptz;not null;autoCreateTime"`
	SchoolStudentUpdatedAt time.Time      `json:"school_student_updated_at" gorm:"column:school_student_updated_at;type:timestamptz;not null;autoUpdateTime"`
	SchoolStudentDeletedAt gorm.DeletedAt `json:"school_student_deleted_at,omitempty" gorm:"column:school_student_deleted_at;type:timestamptz;index"`
}

func (SchoolStudent) TableName() string { return "school_students" }
