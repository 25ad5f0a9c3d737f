// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolfee_backend/internals/features/academics/students/model"
)

type StudentResponse struct {
	SchoolStudentID         uuid.UUID           `json:"school_student_id"`
	SchoolStudentSchoolID   uuid.UUID           `json:"school_student_school_id"`
	SchoolStudentCode       string              `json:"school_student_code"`
	SchoolStudentFirstName  string              `json:"school_student_first_name"`
	SchoolStudentLastName   string              `json:"school_student_last_name"`
	SchoolStudentGradeLevel string              `json:"school_student_grade_level"`
	SchoolStudentStatus     model.StudentStatus `json:"school_student_status"`
	SchoolStudentCreatedAt  time.Time           `json:"school_student_created_at"`
}

func ToStudentResponse(m model.SchoolStudent) StudentResponse {
	return StudentResponse{
		SchoolStudentID:         m.SchoolStudentID,
		SchoolStudentSchoolID:   m.SchoolStudentSchoolID,
		SchoolStudentCode:       m.SchoolStudentCode,
		SchoolStudentFirstName:  m.SchoolStudentFirstName,
		SchoolStudentLastName:   m.SchoolStudentLastName,
		SchoolStudentGradeLevel: m.SchoolStudentGradeLevel,
		SchoolStudentStatus:     m.SchoolStudentStatus,
		SchoolStudentCreatedAt:  m.SchoolStudentCreatedAt,
	}
}

func ToStudentResponses(list []model.SchoolStudent) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}
