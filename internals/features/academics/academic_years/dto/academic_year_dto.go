// file: internals/features/academics/academic_years/dto/academic_year_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolfee_backend/internals/features/academics/academic_years/model"
)

// Create
type AcademicYearCreateDTO struct {
	AcademicYearName      string    `json:"academic_year_name" validate:"required,max=30"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" validate:"required"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date" validate:"required"`
	AcademicYearTermCount int16     `json:"academic_year_term_count" validate:"required,min=1,max=4"`
	AcademicYearIsActive  bool      `json:"academic_year_is_active"`
}

// Response
type AcademicYearResponse struct {
	AcademicYearID        uuid.UUID `json:"academic_year_id"`
	AcademicYearSchoolID  uuid.UUID `json:"academic_year_school_id"`
	AcademicYearName      string    `json:"academic_year_name"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date"`
	AcademicYearTermCount int16     `json:"academic_year_term_count"`
	AcademicYearIsActive  bool      `json:"academic_year_is_active"`
	AcademicYearCreatedAt time.Time `json:"academic_year_created_at"`
}

func ToAcademicYearResponse(m model.AcademicYear) AcademicYearResponse {
	return AcademicYearResponse{
		AcademicYearID:        m.AcademicYearID,
		AcademicYearSchoolID:  m.AcademicYearSchoolID,
		AcademicYearName:      m.AcademicYearName,
		AcademicYearStartDate: m.AcademicYearStartDate,
		AcademicYearEndDate:   m.AcademicYearEndDate,
		AcademicYearTermCount: m.AcademicYearTermCount,
		AcademicYearIsActive:  m.AcademicYearIsActive,
		AcademicYearCreatedAt: m.AcademicYearCreatedAt,
	}
}

func ToAcademicYearResponses(list []model.AcademicYear) []AcademicYearResponse {
	out := make([]AcademicYearResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToAcademicYearResponse(v))
	}
	return out
}

func AcademicYearCreateDTOToModel(d AcademicYearCreateDTO, schoolID uuid.UUID) model.AcademicYear {
	return model.AcademicYear{
		AcademicYearSchoolID:  schoolID,
		AcademicYearName:      d.AcademicYearName,
		AcademicYearStartDate: d.AcademicYearStartDate,
		AcademicYearEndDate:   d.AcademicYearEndDate,
		AcademicYearTermCount: d.AcademicYearTermCount,
		AcademicYearIsActive:  d.AcademicYearIsActive,
	}
}
