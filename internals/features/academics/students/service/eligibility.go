// file: internals/features/academics/students/service/eligibility.go
package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "schoolfee_backend/internals/features/academics/students/model"
)

// NormalizeGrade lowers and trims a grade level. Roster data is
// inconsistently cased ("Grade 10" / "grade 10" / "GRADE 10"), so every
// comparison goes through this, never exact-case equality.
func NormalizeGrade(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveEligible returns the active students of a school, optionally
// narrowed to one grade (case-insensitive). An empty gradeLevel means no
// grade filter — the caller passes "" for program_type "all" structures.
// No match returns an empty slice, never an error.
func ResolveEligible(db *gorm.DB, schoolID uuid.UUID, gradeLevel string) ([]model.SchoolStudent, error) {
	q := db.Model(&model.SchoolStudent{}).
		Where("school_student_school_id = ?", schoolID).
		Where("school_student_status = ?", model.StudentStatusActive)

	if g := NormalizeGrade(gradeLevel); g != "" {
		q = q.Where("LOWER(school_student_grade_level) = ?", g)
	}

	var rows []model.SchoolStudent
	if err := q.Order("school_student_code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
