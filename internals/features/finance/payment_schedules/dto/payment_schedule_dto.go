// file: internals/features/finance/payment_schedules/dto/payment_schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolfee_backend/internals/features/finance/payment_schedules/model"
)

// Custom installment row supplied by the caller (custom type only).
type CustomInstallmentDTO struct {
	Label   string    `json:"label" validate:"required,max=60"`
	Amount  float64   `json:"amount" validate:"required,gt=0"`
	DueDate time.Time `json:"due_date" validate:"required"`
}

// Create
type PaymentScheduleCreateDTO struct {
	PaymentScheduleType               model.ScheduleType `json:"payment_schedule_type" validate:"required,oneof=upfront per_term monthly custom"`
	PaymentScheduleDiscountPercentage float64            `json:"payment_schedule_discount_percentage" validate:"min=0,max=50"`
	PaymentScheduleCurrency           string             `json:"payment_schedule_currency" validate:"omitempty,len=3"`

	// Anchor for generated due dates; defaults to the academic year start.
	StartDate *time.Time `json:"start_date,omitempty"`

	// Custom type only
	Installments []CustomInstallmentDTO `json:"installments,omitempty" validate:"omitempty,dive"`
}

// Response
type PaymentScheduleResponse struct {
	PaymentScheduleID                 uuid.UUID           `json:"payment_schedule_id"`
	PaymentScheduleSchoolID           uuid.UUID           `json:"payment_schedule_school_id"`
	PaymentScheduleStructureID        uuid.UUID           `json:"payment_schedule_structure_id"`
	PaymentScheduleType               model.ScheduleType  `json:"payment_schedule_type"`
	PaymentScheduleDiscountPercentage float64             `json:"payment_schedule_discount_percentage"`
	PaymentScheduleCurrency           string              `json:"payment_schedule_currency"`
	PaymentScheduleInstallments       []model.Installment `json:"payment_schedule_installments"`

	// Derived, never persisted: upfront total after the early-payment discount.
	DiscountedTotal *float64 `json:"discounted_total,omitempty"`

	PaymentScheduleCreatedAt time.Time `json:"payment_schedule_created_at"`
}

func ToPaymentScheduleResponse(m model.PaymentSchedule, structureTotal float64) PaymentScheduleResponse {
	resp := PaymentScheduleResponse{
		PaymentScheduleID:                 m.PaymentScheduleID,
		PaymentScheduleSchoolID:           m.PaymentScheduleSchoolID,
		PaymentScheduleStructureID:        m.PaymentScheduleStructureID,
		PaymentScheduleType:               m.PaymentScheduleType,
		PaymentScheduleDiscountPercentage: m.PaymentScheduleDiscountPercentage,
		PaymentScheduleCurrency:           m.PaymentScheduleCurrency,
		PaymentScheduleInstallments:       []model.Installment(m.PaymentScheduleInstallments),
		PaymentScheduleCreatedAt:          m.PaymentScheduleCreatedAt,
	}
	if m.PaymentScheduleType == model.ScheduleTypeUpfront && m.PaymentScheduleDiscountPercentage > 0 {
		d := m.DiscountedTotal(structureTotal)
		resp.DiscountedTotal = &d
	}
	return resp
}

func ToPaymentScheduleResponses(list []model.PaymentSchedule, structureTotal float64) []PaymentScheduleResponse {
	out := make([]PaymentScheduleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentScheduleResponse(v, structureTotal))
	}
	return out
}

func CustomInstallmentsToModel(list []CustomInstallmentDTO) []model.Installment {
	out := make([]model.Installment, 0, len(list))
	for i, d := range list {
		out = append(out, model.Installment{
			InstallmentNumber: i + 1,
			Label:             d.Label,
			Amount:            d.Amount,
			DueDate:           d.DueDate,
		})
	}
	return out
}
