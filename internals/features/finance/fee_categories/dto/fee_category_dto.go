// file: internals/features/finance/fee_categories/dto/fee_category_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolfee_backend/internals/features/finance/fee_categories/model"
)

// Create
type FeeCategoryCreateDTO struct {
	FeeCategoryName        string                `json:"fee_category_name" validate:"required,max=80"`
	FeeCategoryDescription *string               `json:"fee_category_description,omitempty"`
	FeeCategoryIsMandatory bool                  `json:"fee_category_is_mandatory"`
	FeeCategoryIsRecurring bool                  `json:"fee_category_is_recurring"`
	FeeCategoryType        model.FeeCategoryType `json:"fee_category_type" validate:"required,oneof=tuition additional"`
}

// Update (partial)
type FeeCategoryUpdateDTO struct {
	FeeCategoryName        *string                `json:"fee_category_name,omitempty" validate:"omitempty,max=80"`
	FeeCategoryDescription *string                `json:"fee_category_description,omitempty"`
	FeeCategoryIsMandatory *bool                  `json:"fee_category_is_mandatory,omitempty"`
	FeeCategoryIsRecurring *bool                  `json:"fee_category_is_recurring,omitempty"`
	FeeCategoryType        *model.FeeCategoryType `json:"fee_category_type,omitempty" validate:"omitempty,oneof=tuition additional"`
}

// Response
type FeeCategoryResponse struct {
	FeeCategoryID          uuid.UUID             `json:"fee_category_id"`
	FeeCategorySchoolID    uuid.UUID             `json:"fee_category_school_id"`
	FeeCategoryName        string                `json:"fee_category_name"`
	FeeCategoryDescription *string               `json:"fee_category_description,omitempty"`
	FeeCategoryIsMandatory bool                  `json:"fee_category_is_mandatory"`
	FeeCategoryIsRecurring bool                  `json:"fee_category_is_recurring"`
	FeeCategoryType        model.FeeCategoryType `json:"fee_category_type"`
	FeeCategoryCreatedAt   time.Time             `json:"fee_category_created_at"`
	FeeCategoryUpdatedAt   time.Time             `json:"fee_category_updated_at"`
}

func ToFeeCategoryResponse(m model.FeeCategory) FeeCategoryResponse {
	return FeeCategoryResponse{
		FeeCategoryID:          m.FeeCategoryID,
		FeeCategorySchoolID:    m.FeeCategorySchoolID,
		FeeCategoryName:        m.FeeCategoryName,
		FeeCategoryDescription: m.FeeCategoryDescription,
		FeeCategoryIsMandatory: m.FeeCategoryIsMandatory,
		FeeCategoryIsRecurring: m.FeeCategoryIsRecurring,
		FeeCategoryType:        m.FeeCategoryType,
		FeeCategoryCreatedAt:   m.FeeCategoryCreatedAt,
		FeeCategoryUpdatedAt:   m.FeeCategoryUpdatedAt,
	}
}

func ToFeeCategoryResponses(list []model.FeeCategory) []FeeCategoryResponse {
	out := make([]FeeCategoryResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeCategoryResponse(v))
	}
	return out
}

func FeeCategoryCreateDTOToModel(d FeeCategoryCreateDTO, schoolID uuid.UUID) model.FeeCategory {
	return model.FeeCategory{
		FeeCategorySchoolID:    schoolID,
		FeeCategoryName:        d.FeeCategoryName,
		FeeCategoryDescription: d.FeeCategoryDescription,
		FeeCategoryIsMandatory: d.FeeCategoryIsMandatory,
		FeeCategoryIsRecurring: d.FeeCategoryIsRecurring,
		FeeCategoryType:        d.FeeCategoryType,
	}
}

// ApplyFeeCategoryUpdate mutates m with the non-nil fields of d.
func ApplyFeeCategoryUpdate(m *model.FeeCategory, d FeeCategoryUpdateDTO) {
	if d.FeeCategoryName != nil {
		m.FeeCategoryName = *d.FeeCategoryName
	}
	if d.FeeCategoryDescription != nil {
		m.FeeCategoryDescription = d.FeeCategoryDescription
	}
	if d.FeeCategoryIsMandatory != nil {
		m.FeeCategoryIsMandatory = *d.FeeCategoryIsMandatory
	}
	if d.FeeCategoryIsRecurring != nil {
		m.FeeCategoryIsRecurring = *d.FeeCategoryIsRecurring
	}
	if d.FeeCategoryType != nil {
		m.FeeCategoryType = *d.FeeCategoryType
	}
}
