// file: internals/features/finance/assignments/service/engine_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "schoolfee_backend/internals/features/finance/assignments/model"
)

func newIDs(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func TestDiffCandidates(t *testing.T) {
	ids := newIDs(5)
	assigned := map[uuid.UUID]struct{}{
		ids[1]: {},
		ids[3]: {},
	}

	got := DiffCandidates(ids, assigned)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{ids[0], ids[2], ids[4]}, got, "input order preserved")
}

// A second pass over the same roster yields nothing to assign: that is the
// whole idempotency story.
func TestDiffCandidatesRerunIsEmpty(t *testing.T) {
	ids := newIDs(3)
	assigned := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		assigned[id] = struct{}{}
	}

	assert.Empty(t, DiffCandidates(ids, assigned))
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(10, 4, 2)
	assert.Equal(t, 10, s.TotalStudents)
	assert.Equal(t, 8, s.NewAssignments, "students to assign × schedules")
	assert.Equal(t, 6, s.ExistingAssignments)
	assert.Equal(t, 2, s.SchedulesCount)

	// Re-run shape: everyone already covered.
	s = BuildSummary(3, 0, 1)
	assert.Equal(t, 0, s.NewAssignments)
	assert.Equal(t, 3, s.ExistingAssignments)
}

func TestBuildRows(t *testing.T) {
	schoolID := uuid.New()
	structureID := uuid.New()
	yearID := uuid.New()
	students := newIDs(3)
	schedules := newIDs(2)

	rows := BuildRows(schoolID, structureID, yearID, students, schedules)
	require.Len(t, rows, 6)

	// Student-major order: both schedules of student 0 come first.
	assert.Equal(t, students[0], rows[0].StudentFeeAssignmentStudentID)
	assert.Equal(t, schedules[0], rows[0].StudentFeeAssignmentScheduleID)
	assert.Equal(t, students[0], rows[1].StudentFeeAssignmentStudentID)
	assert.Equal(t, schedules[1], rows[1].StudentFeeAssignmentScheduleID)
	assert.Equal(t, students[1], rows[2].StudentFeeAssignmentStudentID)

	for _, r := range rows {
		assert.Equal(t, schoolID, r.StudentFeeAssignmentSchoolID)
		assert.Equal(t, structureID, r.StudentFeeAssignmentStructureID)
		assert.Equal(t, yearID, r.StudentFeeAssignmentAcademicYearID)
		assert.Equal(t, model.AssignmentStatusActive, r.StudentFeeAssignmentStatus)
		assert.Zero(t, r.StudentFeeAssignmentPaidAmount)
	}
}

func TestChunk(t *testing.T) {
	rows := make([]model.StudentFeeAssignment, 120)

	batches := Chunk(rows, 50)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 50)
	assert.Len(t, batches[1], 50)
	assert.Len(t, batches[2], 20)

	assert.Nil(t, Chunk(nil, 50))

	// Non-positive size falls back to the default.
	batches = Chunk(rows, 0)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], DefaultBatchSize)
}

func TestExecuteBatchesAllSucceed(t *testing.T) {
	batches := Chunk(make([]model.StudentFeeAssignment, 75), 50)

	var calls int
	report := ExecuteBatches(batches, func(batch []model.StudentFeeAssignment) (int, error) {
		calls++
		return len(batch), nil
	})

	assert.Equal(t, 2, calls)
	assert.Equal(t, 75, report.Created)
	assert.Empty(t, report.Errors)
	assert.False(t, report.Partial())
	assert.False(t, report.AllFailed())
}

// 120 students, batch size 50, batch 2 blows up: batches 1 and 3 stay
// committed (70 rows) and the failure is attributed to batch 2 only.
func TestExecuteBatchesPartialFailure(t *testing.T) {
	batches := Chunk(make([]model.StudentFeeAssignment, 120), 50)
	require.Len(t, batches, 3)

	var calls int
	report := ExecuteBatches(batches, func(batch []model.StudentFeeAssignment) (int, error) {
		calls++
		if calls == 2 {
			return 0, errors.New("deadlock detected")
		}
		return len(batch), nil
	})

	assert.Equal(t, 3, calls, "later batches still run after a failure")
	assert.Equal(t, 70, report.Created)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "batch 2")
	assert.Contains(t, report.Errors[0], "deadlock detected")
	assert.True(t, report.Partial())
	assert.False(t, report.AllFailed())
}

func TestExecuteBatchesAllFail(t *testing.T) {
	batches := Chunk(make([]model.StudentFeeAssignment, 60), 50)

	report := ExecuteBatches(batches, func(batch []model.StudentFeeAssignment) (int, error) {
		return 0, errors.New("connection refused")
	})

	assert.Equal(t, 0, report.Created)
	assert.Len(t, report.Errors, 2)
	assert.True(t, report.AllFailed())
	assert.False(t, report.Partial())
}

// Conflict-skipped rows surface through the per-batch created count, not as
// errors: the insert reports how many rows actually landed.
func TestExecuteBatchesConflictSkips(t *testing.T) {
	batches := Chunk(make([]model.StudentFeeAssignment, 50), 50)

	report := ExecuteBatches(batches, func(batch []model.StudentFeeAssignment) (int, error) {
		return len(batch) - 3, nil
	})

	assert.Equal(t, 47, report.Created)
	assert.Empty(t, report.Errors)
}

// End-to-end plan: 3 eligible students, 1 already assigned, 2 schedules.
func TestPlanEndToEnd(t *testing.T) {
	schoolID := uuid.New()
	structureID := uuid.New()
	yearID := uuid.New()
	students := newIDs(3)
	schedules := newIDs(2)

	assigned := map[uuid.UUID]struct{}{students[1]: {}}

	toAssign := DiffCandidates(students, assigned)
	require.Len(t, toAssign, 2)

	summary := BuildSummary(len(students), len(toAssign), len(schedules))
	assert.Equal(t, 3, summary.TotalStudents)
	assert.Equal(t, 4, summary.NewAssignments)
	assert.Equal(t, 1, summary.ExistingAssignments)

	rows := BuildRows(schoolID, structureID, yearID, toAssign, schedules)
	require.Len(t, rows, 4)

	report := ExecuteBatches(Chunk(rows, DefaultBatchSize), func(batch []model.StudentFeeAssignment) (int, error) {
		return len(batch), nil
	})
	assert.Equal(t, summary.NewAssignments, report.Created)
	assert.Empty(t, report.Errors)
}
