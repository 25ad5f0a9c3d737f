// file: internals/features/finance/payment_schedules/service/installments.go
package service

import (
	"fmt"
	"math"
	"time"

	structureService "schoolfee_backend/internals/features/finance/fee_structures/service"
	model "schoolfee_backend/internals/features/finance/payment_schedules/model"
	helper "schoolfee_backend/internals/helpers"
)

// GenerateInput carries everything an installment strategy needs.
// Custom is only read by the custom strategy.
type GenerateInput struct {
	Type      model.ScheduleType
	Total     float64
	TermCount int       // from the academic year; per_term only
	StartDate time.Time // first due date anchor
	Custom    []model.Installment
}

type generator func(in GenerateInput) ([]model.Installment, error)

// Strategy table: schedule types are a tagged union dispatched here, not an
// inheritance hierarchy.
var generators = map[model.ScheduleType]generator{
	model.ScheduleTypeUpfront: generateUpfront,
	model.ScheduleTypePerTerm: generatePerTerm,
	model.ScheduleTypeMonthly: generateMonthly,
	model.ScheduleTypeCustom:  validateCustom,
}

// BuildInstallments produces the concrete dated installment list for a
// schedule. The returned amounts always sum exactly to in.Total: even
// splits round per installment and the final installment absorbs the
// remainder.
func BuildInstallments(in GenerateInput) ([]model.Installment, error) {
	gen, ok := generators[in.Type]
	if !ok {
		return nil, helper.NewFieldValidationError("payment_schedule_type",
			fmt.Sprintf("unknown schedule type %q", in.Type))
	}
	if in.Total <= 0 {
		return nil, helper.NewFieldValidationError("total_amount", "total must be positive")
	}
	return gen(in)
}

// CheckDiscount validates an early-payment discount percentage.
func CheckDiscount(pct float64) error {
	if pct < 0 || pct > 50 {
		return helper.NewFieldValidationError("discount_percentage",
			"discount_percentage must be between 0 and 50")
	}
	return nil
}

// DiscountedTotal derives the upfront total with the discount applied; the
// undiscounted total stays in storage.
func DiscountedTotal(total, pct float64) float64 {
	return round2(total * (1 - pct/100))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func generateUpfront(in GenerateInput) ([]model.Installment, error) {
	return []model.Installment{{
		InstallmentNumber: 1,
		Label:             "Full payment",
		Amount:            round2(in.Total),
		DueDate:           in.StartDate,
	}}, nil
}

func generatePerTerm(in GenerateInput) ([]model.Installment, error) {
	n := in.TermCount
	if n < 1 || n > 12 {
		return nil, helper.NewFieldValidationError("term_count",
			fmt.Sprintf("term count %d outside supported range 1..12", n))
	}
	step := 12 / n
	if step == 0 {
		step = 1
	}
	out := evenSplit(in.Total, n)
	for i := range out {
		out[i].Label = fmt.Sprintf("Term %d", i+1)
		out[i].DueDate = in.StartDate.AddDate(0, i*step, 0)
	}
	return out, nil
}

func generateMonthly(in GenerateInput) ([]model.Installment, error) {
	out := evenSplit(in.Total, 12)
	for i := range out {
		out[i].Label = fmt.Sprintf("Month %d", i+1)
		out[i].DueDate = in.StartDate.AddDate(0, i, 0)
	}
	return out, nil
}

func validateCustom(in GenerateInput) ([]model.Installment, error) {
	if len(in.Custom) == 0 {
		return nil, helper.NewFieldValidationError("installments",
			"custom schedule requires at least one installment")
	}
	var sum float64
	for _, it := range in.Custom {
		if it.Amount <= 0 {
			return nil, helper.NewFieldValidationError("installments",
				"installment amounts must be positive")
		}
		sum += it.Amount
	}
	if !structureService.Reconciles(sum, in.Total) {
		return nil, helper.NewFieldValidationError("installments",
			fmt.Sprintf("installment amounts (%.2f) do not sum to total (%.2f)", sum, in.Total))
	}
	out := make([]model.Installment, len(in.Custom))
	copy(out, in.Custom)
	for i := range out {
		out[i].InstallmentNumber = i + 1
		out[i].Amount = round2(out[i].Amount)
	}
	return out, nil
}

// evenSplit divides total into n parts, each floored to whole cents; the
// last part absorbs the remainder so the parts always sum exactly to
// round2(total). Flooring keeps the remainder non-negative, so no
// installment can come out below zero however small the total.
func evenSplit(total float64, n int) []model.Installment {
	out := make([]model.Installment, n)
	cents := math.Floor(total*100/float64(n) + 1e-9)
	each := cents / 100
	var allocated float64
	for i := 0; i < n-1; i++ {
		out[i] = model.Installment{
			InstallmentNumber: i + 1,
			Amount:            each,
		}
		allocated += each
	}
	out[n-1] = model.Installment{
		InstallmentNumber: n,
		Amount:            round2(round2(total) - round2(allocated)),
	}
	return out
}
