// file: internals/features/academics/academic_years/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYear is per-school reference data. TermCount drives the per-term
// installment strategy.
type AcademicYear struct {
	// PK
	AcademicYearID uuid.UUID `json:"academic_year_id" gorm:"column:academic_year_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	AcademicYearSchoolID uuid.UUID `json:"academic_year_school_id" gorm:"column:academic_year_school_id;type:uuid;not null;index:idx_academic_years_school"`

	AcademicYearName      string    `json:"academic_year_name" gorm:"column:academic_year_name;type:varchar(30);not null"`
	AcademicYearStartDate time.Time `json:"academic_year_start_date" gorm:"column:academic_year_start_date;type:date;not null"`
	AcademicYearEndDate   time.Time `json:"academic_year_end_date" gorm:"column:academic_year_end_date;type:date;not null"`

	AcademicYearTermCount int16 `json:"academic_year_term_count" gorm:"column:academic_year_term_count;type:smallint;not null;default:3"`
	AcademicYearIsActive  bool  `json:"academic_year_is_active" gorm:"column:academic_year_is_active;type:boolean;not null;default:false"`

	// Timestamps
	AcademicYearCreatedAt time.Time      `json:"academic_year_created_at" gorm:"column:academic_year_created_at;type:timestamptz;not null;autoCreateTime"`
	AcademicYearUpdatedAt time.Time      `json:"academic_year_updated_at" gorm:"column:academic_year_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AcademicYearDeletedAt gorm.DeletedAt `json:"academic_year_deleted_at,omitempty" gorm:"column:academic_year_deleted_at;type:timestamptz;index"`
}

func (AcademicYear) TableName() string { return "academic_years" }
