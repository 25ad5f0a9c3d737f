// file: internals/features/finance/fee_structures/dto/fee_structure_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "schoolfee_backend/internals/features/finance/fee_structures/model"
	scheduleDTO "schoolfee_backend/internals/features/finance/payment_schedules/dto"
	scheduleModel "schoolfee_backend/internals/features/finance/payment_schedules/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEE STRUCTURES — DTO
////////////////////////////////////////////////////////////////////////////////

// One category line of the request body.
type FeeStructureItemDTO struct {
	CategoryID   uuid.UUID `json:"category_id" validate:"required"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	IsMandatory  *bool     `json:"is_mandatory,omitempty"`
	IsRecurring  *bool     `json:"is_recurring,omitempty"`
	PaymentModes []string  `json:"payment_modes,omitempty" validate:"omitempty,dive,oneof=upfront per_term monthly custom"`
}

// Create; Update uses the same body (full item-set replace).
type FeeStructureCreateDTO struct {
	FeeStructureName           string    `json:"fee_structure_name" validate:"required,max=120"`
	FeeStructureAcademicYearID uuid.UUID `json:"fee_structure_academic_year_id" validate:"required"`
	FeeStructureGradeLevel     string    `json:"fee_structure_grade_level" validate:"required,max=30"`
	FeeStructureProgramType    string    `json:"fee_structure_program_type" validate:"required,max=30"`
	FeeStructureTotalAmount    float64   `json:"fee_structure_total_amount" validate:"required,gt=0"`

	Categories []FeeStructureItemDTO `json:"categories" validate:"required,min=1,dive"`
}

type FeeStructureStatusDTO struct {
	FeeStructureStatus model.FeeStructureStatus `json:"fee_structure_status" validate:"required,oneof=draft published archived"`
}

// Response
type FeeStructureItemResponse struct {
	FeeStructureItemID         uuid.UUID `json:"fee_structure_item_id"`
	FeeStructureItemCategoryID uuid.UUID `json:"fee_structure_item_category_id"`
	FeeStructureItemAmount     float64   `json:"fee_structure_item_amount"`
	IsMandatory                bool      `json:"is_mandatory"`
	IsRecurring                bool      `json:"is_recurring"`
	PaymentModes               []string  `json:"payment_modes,omitempty"`
}

type FeeStructureResponse struct {
	FeeStructureID             uuid.UUID                  `json:"fee_structure_id"`
	FeeStructureSchoolID       uuid.UUID                  `json:"fee_structure_school_id"`
	FeeStructureAcademicYearID uuid.UUID                  `json:"fee_structure_academic_year_id"`
	FeeStructureName           string                     `json:"fee_structure_name"`
	FeeStructureGradeLevel     string                     `json:"fee_structure_grade_level"`
	FeeStructureProgramType    string                     `json:"fee_structure_program_type"`
	FeeStructureTotalAmount    float64                    `json:"fee_structure_total_amount"`
	FeeStructureStatus         model.FeeStructureStatus   `json:"fee_structure_status"`
	FeeStructureItems          []FeeStructureItemResponse `json:"fee_structure_items,omitempty"`
	FeeStructureCreatedAt      time.Time                  `json:"fee_structure_created_at"`
	FeeStructureUpdatedAt      time.Time                  `json:"fee_structure_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func paymentModesToJSON(modes []string) datatypes.JSON {
	if len(modes) == 0 {
		return nil
	}
	raw, err := json.Marshal(modes)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func paymentModesFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var modes []string
	if err := json.Unmarshal(raw, &modes); err != nil {
		return nil
	}
	return modes
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// ItemDTOToModel builds one item row; defaults follow the category flags of
// the request (mandatory/recurring default true).
func ItemDTOToModel(d FeeStructureItemDTO, structureID uuid.UUID) model.FeeStructureItem {
	return model.FeeStructureItem{
		FeeStructureItemStructureID:  structureID,
		FeeStructureItemCategoryID:   d.CategoryID,
		FeeStructureItemAmount:       d.Amount,
		FeeStructureItemIsMandatory:  boolOrDefault(d.IsMandatory, true),
		FeeStructureItemIsRecurring:  boolOrDefault(d.IsRecurring, true),
		FeeStructureItemPaymentModes: paymentModesToJSON(d.PaymentModes),
	}
}

func FeeStructureCreateDTOToModel(d FeeStructureCreateDTO, schoolID uuid.UUID) model.FeeStructure {
	return model.FeeStructure{
		FeeStructureSchoolID:       schoolID,
		FeeStructureAcademicYearID: d.FeeStructureAcademicYearID,
		FeeStructureName:           d.FeeStructureName,
		FeeStructureGradeLevel:     d.FeeStructureGradeLevel,
		FeeStructureProgramType:    d.FeeStructureProgramType,
		FeeStructureTotalAmount:    d.FeeStructureTotalAmount,
		FeeStructureStatus:         model.FeeStructureStatusDraft,
	}
}

func ToFeeStructureItemResponse(m model.FeeStructureItem) FeeStructureItemResponse {
	return FeeStructureItemResponse{
		FeeStructureItemID:         m.FeeStructureItemID,
		FeeStructureItemCategoryID: m.FeeStructureItemCategoryID,
		FeeStructureItemAmount:     m.FeeStructureItemAmount,
		IsMandatory:                m.FeeStructureItemIsMandatory,
		IsRecurring:                m.FeeStructureItemIsRecurring,
		PaymentModes:               paymentModesFromJSON(m.FeeStructureItemPaymentModes),
	}
}

func ToFeeStructureResponse(m model.FeeStructure) FeeStructureResponse {
	items := make([]FeeStructureItemResponse, 0, len(m.FeeStructureItems))
	for _, it := range m.FeeStructureItems {
		items = append(items, ToFeeStructureItemResponse(it))
	}
	return FeeStructureResponse{
		FeeStructureID:             m.FeeStructureID,
		FeeStructureSchoolID:       m.FeeStructureSchoolID,
		FeeStructureAcademicYearID: m.FeeStructureAcademicYearID,
		FeeStructureName:           m.FeeStructureName,
		FeeStructureGradeLevel:     m.FeeStructureGradeLevel,
		FeeStructureProgramType:    m.FeeStructureProgramType,
		FeeStructureTotalAmount:    m.FeeStructureTotalAmount,
		FeeStructureStatus:         m.FeeStructureStatus,
		FeeStructureItems:          items,
		FeeStructureCreatedAt:      m.FeeStructureCreatedAt,
		FeeStructureUpdatedAt:      m.FeeStructureUpdatedAt,
	}
}

// FeeStructureDetailResponse: the single-structure read, items plus the
// schedules hanging off it.
type FeeStructureDetailResponse struct {
	FeeStructureResponse
	PaymentSchedules []scheduleDTO.PaymentScheduleResponse `json:"payment_schedules"`
}

func ToFeeStructureDetailResponse(m model.FeeStructure, schedules []scheduleModel.PaymentSchedule) FeeStructureDetailResponse {
	return FeeStructureDetailResponse{
		FeeStructureResponse: ToFeeStructureResponse(m),
		PaymentSchedules:     scheduleDTO.ToPaymentScheduleResponses(schedules, m.FeeStructureTotalAmount),
	}
}

func ToFeeStructureResponses(list []model.FeeStructure) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeStructureResponse(v))
	}
	return out
}
