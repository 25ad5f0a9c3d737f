// file: internals/features/finance/fee_structures/model/fee_structure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM fee_structure_status (mirror of the DB enum) ----------------------
type FeeStructureStatus string

const (
	FeeStructureStatusDraft     FeeStructureStatus = "draft"
	FeeStructureStatusPublished FeeStructureStatus = "published"
	FeeStructureStatusArchived  FeeStructureStatus = "archived"
)

// ProgramTypeAll: sentinel program_type. A structure with program_type "all"
// covers every grade of its academic year, and may not coexist with any
// grade-specific structure in that year (both directions).
const ProgramTypeAll = "all"

// FeeStructure bundles category amounts for one (year, grade, program) scope.
// At most one alive structure per (academic_year_id, lower(grade_level),
// program_type) — the partial unique index in the migration SQL is the
// authoritative guard; the controller check is the friendly one.
type FeeStructure struct {
	// PK
	FeeStructureID uuid.UUID `json:"fee_structure_id" gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	FeeStructureSchoolID uuid.UUID `json:"fee_structure_school_id" gorm:"column:fee_structure_school_id;type:uuid;not null;index:idx_fee_structures_school_year,priority:1"`

	FeeStructureAcademicYearID uuid.UUID `json:"fee_structure_academic_year_id" gorm:"column:fee_structure_academic_year_id;type:uuid;not null;index:idx_fee_structures_school_year,priority:2"`

	FeeStructureName string `json:"fee_structure_name" gorm:"column:fee_structure_name;type:varchar(120);not null"`

	// Free text; uniqueness compares LOWER(grade_level)
	FeeStructureGradeLevel  string `json:"fee_structure_grade_level" gorm:"column:fee_structure_grade_level;type:varchar(30);not null"`
	FeeStructureProgramType string `json:"fee_structure_program_type" gorm:"column:fee_structure_program_type;type:varchar(30);not null"`

	// Derived: must equal the item sum within 0.01
	FeeStructureTotalAmount float64 `json:"fee_structure_total_amount" gorm:"column:fee_structure_total_amount;type:numeric(14,2);not null"`

	FeeStructureStatus FeeStructureStatus `json:"fee_structure_status" gorm:"column:fee_structure_status;type:varchar(12);not null;default:'draft';index:idx_fee_structures_status"`

	// Items (owned; replaced wholesale on update)
	FeeStructureItems []FeeStructureItem `json:"fee_structure_items,omitempty" gorm:"foreignKey:FeeStructureItemStructureID;references:FeeStructureID"`

	// Timestamps
	FeeStructureCreatedAt time.Time      `json:"fee_structure_created_at" gorm:"column:fee_structure_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeStructureUpdatedAt time.Time      `json:"fee_structure_updated_at" gorm:"column:fee_structure_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeStructureDeletedAt gorm.DeletedAt `json:"fee_structure_deleted_at,omitempty" gorm:"column:fee_structure_deleted_at;type:timestamptz;index"`
}

func (FeeStructure) TableName() string { return "fee_structures" }
