// file: internals/features/finance/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "schoolfee_backend/internals/features/academics/students/model"
	model "schoolfee_backend/internals/features/finance/assignments/model"
	"schoolfee_backend/internals/features/finance/assignments/service"
)

/* =========================================================
   REQUESTS
========================================================= */

// AutoAssignRequest drives the bulk assignment run. With dry_run=true the
// engine plans but never writes.
type AutoAssignRequest struct {
	AcademicYearID uuid.UUID   `json:"academic_year_id" validate:"required"`
	StructureID    uuid.UUID   `json:"structure_id" validate:"required"`
	ScheduleIDs    []uuid.UUID `json:"schedule_ids" validate:"required,min=1,dive,required"`
	DryRun         bool        `json:"dry_run"`
}

type AssignmentCreateDTO struct {
	StudentID      uuid.UUID `json:"student_id" validate:"required"`
	StructureID    uuid.UUID `json:"structure_id" validate:"required"`
	ScheduleID     uuid.UUID `json:"schedule_id" validate:"required"`
	AcademicYearID uuid.UUID `json:"academic_year_id" validate:"required"`
}

/* =========================================================
   RESPONSES
========================================================= */

type AssignmentResponse struct {
	AssignmentID   uuid.UUID              `json:"assignment_id"`
	StudentID      uuid.UUID              `json:"student_id"`
	StructureID    uuid.UUID              `json:"structure_id"`
	ScheduleID     uuid.UUID              `json:"schedule_id"`
	AcademicYearID uuid.UUID              `json:"academic_year_id"`
	PaidAmount     float64                `json:"paid_amount"`
	Status         model.AssignmentStatus `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// PreviewRow is one planned assignment in the dry-run answer.
type PreviewRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentCode string    `json:"student_code"`
	StudentName string    `json:"student_name"`
	ScheduleID  uuid.UUID `json:"schedule_id"`
}

// AutoAssignPreview is the dry_run=true payload: planned rows, no writes.
type AutoAssignPreview struct {
	DryRun      bool            `json:"dry_run"`
	Assignments []PreviewRow    `json:"assignments"`
	Summary     service.Summary `json:"summary"`
}

// AutoAssignResult is the dry_run=false payload. BatchErrors is non-empty
// only on a 207 partial failure.
type AutoAssignResult struct {
	Created     int             `json:"created"`
	BatchErrors []string        `json:"batch_errors,omitempty"`
	Summary     service.Summary `json:"summary"`
}

/* =========================================================
   MAPPERS
========================================================= */

func ToAssignmentResponse(m *model.StudentFeeAssignment) *AssignmentResponse {
	if m == nil {
		return nil
	}
	return &AssignmentResponse{
		AssignmentID:   m.StudentFeeAssignmentID,
		StudentID:      m.StudentFeeAssignmentStudentID,
		StructureID:    m.StudentFeeAssignmentStructureID,
		ScheduleID:     m.StudentFeeAssignmentScheduleID,
		AcademicYearID: m.StudentFeeAssignmentAcademicYearID,
		PaidAmount:     m.StudentFeeAssignmentPaidAmount,
		Status:         m.StudentFeeAssignmentStatus,
		CreatedAt:      m.StudentFeeAssignmentCreatedAt,
		UpdatedAt:      m.StudentFeeAssignmentUpdatedAt,
	}
}

func ToAssignmentResponses(rows []model.StudentFeeAssignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *ToAssignmentResponse(&rows[i]))
	}
	return out
}

// BuildPreviewRows expands (student × schedule) in student-major order with
// display fields resolved from the roster.
func BuildPreviewRows(students []studentModel.SchoolStudent, toAssign []uuid.UUID, scheduleIDs []uuid.UUID) []PreviewRow {
	byID := make(map[uuid.UUID]studentModel.SchoolStudent, len(students))
	for _, s := range students {
		byID[s.SchoolStudentID] = s
	}
	rows := make([]PreviewRow, 0, len(toAssign)*len(scheduleIDs))
	for _, sid := range toAssign {
		s := byID[sid]
		name := s.SchoolStudentFirstName + " " + s.SchoolStudentLastName
		for _, schedID := range scheduleIDs {
			rows = append(rows, PreviewRow{
				StudentID:   sid,
				StudentCode: s.SchoolStudentCode,
				StudentName: name,
				ScheduleID:  schedID,
			})
		}
	}
	return rows
}
