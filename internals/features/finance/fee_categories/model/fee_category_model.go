// file: internals/features/finance/fee_categories/model/fee_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM fee_category_type (mirror of the DB enum) -------------------------
type FeeCategoryType string

const (
	FeeCategoryTypeTuition    FeeCategoryType = "tuition"
	FeeCategoryTypeAdditional FeeCategoryType = "additional"
)

// FeeCategory is reusable reference data (tuition, registration, uniform...).
// Structures reference categories, they never own them.
type FeeCategory struct {
	// PK
	FeeCategoryID uuid.UUID `json:"fee_category_id" gorm:"column:fee_category_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	FeeCategorySchoolID uuid.UUID `json:"fee_category_school_id" gorm:"column:fee_category_school_id;type:uuid;not null;index:idx_fee_categories_school"`

	FeeCategoryName        string  `json:"fee_category_name" gorm:"column:fee_category_name;type:varchar(80);not null"`
	FeeCategoryDescription *string `json:"fee_category_description,omitempty" gorm:"column:fee_category_description;type:text"`

	FeeCategoryIsMandatory bool            `json:"fee_category_is_mandatory" gorm:"column:fee_category_is_mandatory;type:boolean;not null;default:true"`
	FeeCategoryIsRecurring bool            `json:"fee_category_is_recurring" gorm:"column:fee_category_is_recurring;type:boolean;not null;default:true"`
	FeeCategoryType        FeeCategoryType `json:"fee_category_type" gorm:"column:fee_category_type;type:varchar(12);not null;default:'tuition'"`

	// Timestamps
	FeeCategoryCreatedAt time.Time      `json:"fee_category_created_at" gorm:"column:fee_category_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeCategoryUpdatedAt time.Time      `json:"fee_category_updated_at" gorm:"column:fee_category_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeCategoryDeletedAt gorm.DeletedAt `json:"fee_category_deleted_at,omitempty" gorm:"column:fee_category_deleted_at;type:timestamptz;index"`
}

func (FeeCategory) TableName() string { return "fee_categories" }
