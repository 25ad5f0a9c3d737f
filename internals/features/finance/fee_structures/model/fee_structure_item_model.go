// file: internals/features/finance/fee_structures/model/fee_structure_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeeStructureItem is one category line inside a structure. Items are
// replaced wholesale on structure update (delete-all-then-insert inside the
// same transaction), so they carry no soft delete of their own.
type FeeStructureItem struct {
	// PK
	FeeStructureItemID uuid.UUID `json:"fee_structure_item_id" gorm:"column:fee_structure_item_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Parent
	FeeStructureItemStructureID uuid.UUID `json:"fee_structure_item_structure_id" gorm:"column:fee_structure_item_structure_id;type:uuid;not null;index:idx_fee_structure_items_structure"`

	// Catalog reference (never owned)
	FeeStructureItemCategoryID uuid.UUID `json:"fee_structure_item_category_id" gorm:"column:fee_structure_item_category_id;type:uuid;not null;index:idx_fee_structure_items_category"`

	FeeStructureItemAmount float64 `json:"fee_structure_item_amount" gorm:"column:fee_structure_item_amount;type:numeric(14,2);not null"`

	FeeStructureItemIsMandatory bool `json:"fee_structure_item_is_mandatory" gorm:"column:fee_structure_item_is_mandatory;type:boolean;not null;default:true"`
	FeeStructureItemIsRecurring bool `json:"fee_structure_item_is_recurring" gorm:"column:fee_structure_item_is_recurring;type:boolean;not null;default:true"`

	// Accepted payment modes, e.g. ["upfront","per_term"] (JSONB)
	FeeStructureItemPaymentModes datatypes.JSON `json:"fee_structure_item_payment_modes,omitempty" gorm:"column:fee_structure_item_payment_modes;type:jsonb"`

	// Timestamps
	FeeStructureItemCreatedAt time.Time `json:"fee_structure_item_created_at" gorm:"column:fee_structure_item_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (FeeStructureItem) TableName() string { return "fee_structure_items" }
