// file: internals/features/finance/payment_schedules/model/payment_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- ENUM payment_schedule_type (mirror of the DB enum) ---------------------
type ScheduleType string

const (
	ScheduleTypeUpfront ScheduleType = "upfront"
	ScheduleTypePerTerm ScheduleType = "per_term"
	ScheduleTypeMonthly ScheduleType = "monthly"
	ScheduleTypeCustom  ScheduleType = "custom"
)

// Installment is one dated slice of the structure total (JSONB element).
type Installment struct {
	InstallmentNumber int       `json:"installment_number"`
	Label             string    `json:"label"`
	Amount            float64   `json:"amount"`
	DueDate           time.Time `json:"due_date"`
}

// PaymentSchedule is one installment strategy of a structure. Installment
// amounts always sum exactly to the structure total; the upfront discount is
// derived from discount_percentage on read and never persisted pre-applied.
type PaymentSchedule struct {
	// PK
	PaymentScheduleID uuid.UUID `json:"payment_schedule_id" gorm:"column:payment_schedule_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	PaymentScheduleSchoolID uuid.UUID `json:"payment_schedule_school_id" gorm:"column:payment_schedule_school_id;type:uuid;not null;index:idx_payment_schedules_school"`

	// Parent structure
	PaymentScheduleStructureID uuid.UUID `json:"payment_schedule_structure_id" gorm:"column:payment_schedule_structure_id;type:uuid;not null;index:idx_payment_schedules_structure"`

	PaymentScheduleType ScheduleType `json:"payment_schedule_type" gorm:"column:payment_schedule_type;type:varchar(12);not null"`

	// [0,50]; applies only when the payer opts into upfront payment
	PaymentScheduleDiscountPercentage float64 `json:"payment_schedule_discount_percentage" gorm:"column:payment_schedule_discount_percentage;type:numeric(5,2);not null;default:0"`

	PaymentScheduleCurrency string `json:"payment_schedule_currency" gorm:"column:payment_schedule_currency;type:varchar(8);not null;default:'UGX'"`

	// Ordered installment list (JSONB)
	PaymentScheduleInstallments datatypes.JSONSlice[Installment] `json:"payment_schedule_installments" gorm:"column:payment_schedule_installments;type:jsonb"`

	// Timestamps
	PaymentScheduleCreatedAt time.Time      `json:"payment_schedule_created_at" gorm:"column:payment_schedule_created_at;type:timestamptz;not null;autoCreateTime"`
	PaymentScheduleUpdatedAt time.Time      `json:"payment_schedule_updated_at" gorm:"column:payment_schedule_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PaymentScheduleDeletedAt gorm.DeletedAt `json:"payment_schedule_deleted_at,omitempty" gorm:"column:payment_schedule_deleted_at;type:timestamptz;index"`
}

func (PaymentSchedule) TableName() string { return "payment_schedules" }

// DiscountedTotal derives the upfront-with-discount amount from the stored
// fields; the undiscounted total stays on the structure.
func (s PaymentSchedule) DiscountedTotal(total float64) float64 {
	return total * (1 - s.PaymentScheduleDiscountPercentage/100)
}
