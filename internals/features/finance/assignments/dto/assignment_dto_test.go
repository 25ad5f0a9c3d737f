// file: internals/features/finance/assignments/dto/assignment_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "schoolfee_backend/internals/features/academics/students/model"
)

func TestBuildPreviewRows(t *testing.T) {
	students := []studentModel.SchoolStudent{
		{
			SchoolStudentID:        uuid.New(),
			SchoolStudentCode:      "S-001",
			SchoolStudentFirstName: "Amina",
			SchoolStudentLastName:  "Okello",
		},
		{
			SchoolStudentID:        uuid.New(),
			SchoolStudentCode:      "S-002",
			SchoolStudentFirstName: "Brian",
			SchoolStudentLastName:  "Ssentongo",
		},
	}
	schedules := []uuid.UUID{uuid.New(), uuid.New()}

	// Only the second student still needs assignments.
	toAssign := []uuid.UUID{students[1].SchoolStudentID}

	rows := BuildPreviewRows(students, toAssign, schedules)
	require.Len(t, rows, 2)
	assert.Equal(t, "S-002", rows[0].StudentCode)
	assert.Equal(t, "Brian Ssentongo", rows[0].StudentName)
	assert.Equal(t, schedules[0], rows[0].ScheduleID)
	assert.Equal(t, schedules[1], rows[1].ScheduleID)
}

func TestBuildPreviewRowsEmptyPlan(t *testing.T) {
	rows := BuildPreviewRows(nil, nil, []uuid.UUID{uuid.New()})
	assert.Empty(t, rows)
}
