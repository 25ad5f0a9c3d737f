// file: internals/features/finance/assignments/model/student_fee_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM assignment_status (mirror of the DB enum) -------------------------
// active → completed (payments subsystem) or active → cancelled (manual);
// no transition back to active.
type AssignmentStatus string

const (
	AssignmentStatusActive    AssignmentStatus = "active"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

// StudentFeeAssignment links one student to one (structure, schedule, year)
// obligation. The partial unique index
//
//	UNIQUE (student_fee_assignment_student_id,
//	        student_fee_assignment_structure_id,
//	        student_fee_assignment_academic_year_id)
//	WHERE student_fee_assignment_status = 'active'
//	  AND student_fee_assignment_deleted_at IS NULL
//
// lives in the migration SQL and is the authoritative duplicate guard; the
// engine's existence diff is a best-effort optimization on top of it.
type StudentFeeAssignment struct {
	// PK
	StudentFeeAssignmentID uuid.UUID `json:"student_fee_assignment_id" gorm:"column:student_fee_assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	StudentFeeAssignmentSchoolID uuid.UUID `json:"student_fee_assignment_school_id" gorm:"column:student_fee_assignment_school_id;type:uuid;not null;index:idx_student_fee_assignments_school"`

	StudentFeeAssignmentStudentID      uuid.UUID `json:"student_fee_assignment_student_id" gorm:"column:student_fee_assignment_student_id;type:uuid;not null;index:idx_student_fee_assignments_student"`
	StudentFeeAssignmentStructureID    uuid.UUID `json:"student_fee_assignment_structure_id" gorm:"column:student_fee_assignment_structure_id;type:uuid;not null;index:idx_student_fee_assignments_structure"`
	StudentFeeAssignmentScheduleID     uuid.UUID `json:"student_fee_assignment_schedule_id" gorm:"column:student_fee_assignment_schedule_id;type:uuid;not null"`
	StudentFeeAssignmentAcademicYearID uuid.UUID `json:"student_fee_assignment_academic_year_id" gorm:"column:student_fee_assignment_academic_year_id;type:uuid;not null;index:idx_student_fee_assignments_year"`

	// Mutated only by the payments subsystem
	StudentFeeAssignmentPaidAmount float64 `json:"student_fee_assignment_paid_amount" gorm:"column:student_fee_assignment_paid_amount;type:numeric(14,2);not null;default:0"`

	StudentFeeAssignmentStatus AssignmentStatus `json:"student_fee_assignment_status" gorm:"column:student_fee_assignment_status;type:varchar(12);not null;default:'active';index:idx_student_fee_assignments_status"`

	// Timestamps
	StudentFeeAssignmentCreatedAt time.Time      `json:"student_fee_assignment_created_at" gorm:"column:student_fee_assignment_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentFeeAssignmentUpdatedAt time.Time      `json:"student_fee_assignment_updated_at" gorm:"column:student_fee_assignment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentFeeAssignmentDeletedAt gorm.DeletedAt `json:"student_fee_assignment_deleted_at,omitempty" gorm:"column:student_fee_assignment_deleted_at;type:timestamptz;index"`
}

func (StudentFeeAssignment) TableName() string { return "student_fee_assignments" }
