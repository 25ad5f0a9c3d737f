// file: internals/features/finance/assignments/service/engine.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	model "schoolfee_backend/internals/features/finance/assignments/model"
)

// DefaultBatchSize: rows per insert. Batches are sequential so failure
// attribution stays per-batch and deterministic.
const DefaultBatchSize = 50

// Summary mirrors the auto-assign response counts.
type Summary struct {
	TotalStudents       int `json:"total_students"`
	NewAssignments      int `json:"new_assignments"`
	ExistingAssignments int `json:"existing_assignments"`
	SchedulesCount      int `json:"schedules_count"`
}

// DiffCandidates returns the candidates without an active assignment,
// preserving input order. The set-difference is what makes re-runs
// idempotent: already-assigned students fall out on every pass.
func DiffCandidates(candidates []uuid.UUID, assigned map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := assigned[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// BuildSummary: counts for both dry-run and real responses.
// NewAssignments is rows to create (students × schedules);
// ExistingAssignments counts candidates already covered.
func BuildSummary(totalCandidates, toAssign, schedules int) Summary {
	return Summary{
		TotalStudents:       totalCandidates,
		NewAssignments:      toAssign * schedules,
		ExistingAssignments: totalCandidates - toAssign,
		SchedulesCount:      schedules,
	}
}

// BuildRows produces one assignment per (student × schedule), student-major,
// all active with zero paid.
func BuildRows(schoolID, structureID, yearID uuid.UUID, studentIDs, scheduleIDs []uuid.UUID) []model.StudentFeeAssignment {
	rows := make([]model.StudentFeeAssignment, 0, len(studentIDs)*len(scheduleIDs))
	for _, sid := range studentIDs {
		for _, schedID := range scheduleIDs {
			rows = append(rows, model.StudentFeeAssignment{
				StudentFeeAssignmentSchoolID:       schoolID,
				StudentFeeAssignmentStudentID:      sid,
				StudentFeeAssignmentStructureID:    structureID,
				StudentFeeAssignmentScheduleID:     schedID,
				StudentFeeAssignmentAcademicYearID: yearID,
				StudentFeeAssignmentStatus:         model.AssignmentStatusActive,
			})
		}
	}
	return rows
}

// Chunk splits rows into insert batches of at most size.
func Chunk(rows []model.StudentFeeAssignment, size int) [][]model.StudentFeeAssignment {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]model.StudentFeeAssignment
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		out = append(out, rows[start:end])
	}
	return out
}

// BatchReport accumulates the outcome of a sequential batch run.
type BatchReport struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors,omitempty"`
}

// Partial: some batches committed, some failed.
func (r BatchReport) Partial() bool { return r.Created > 0 && len(r.Errors) > 0 }

// AllFailed: nothing committed at all.
func (r BatchReport) AllFailed() bool { return r.Created == 0 && len(r.Errors) > 0 }

// ExecuteBatches runs insert over every batch in order. A failed batch is
// recorded and the remaining batches are still attempted — committed
// batches are never rolled back, and a retry of the whole operation is safe
// because the candidate diff excludes whatever did land.
func ExecuteBatches(batches [][]model.StudentFeeAssignment, insert func(batch []model.StudentFeeAssignment) (int, error)) BatchReport {
	var report BatchReport
	for i, batch := range batches {
		created, err := insert(batch)
		if err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("batch %d (%d rows): %s", i+1, len(batch), err.Error()))
			continue
		}
		report.Created += created
	}
	return report
}
