// file: internals/features/finance/payment_schedules/service/installments_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "schoolfee_backend/internals/features/finance/payment_schedules/model"
)

func sumInstallments(items []model.Installment) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return sum
}

func TestBuildInstallmentsUpfront(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	out, err := BuildInstallments(GenerateInput{
		Type:      model.ScheduleTypeUpfront,
		Total:     1_500_000,
		StartDate: start,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].InstallmentNumber)
	assert.Equal(t, "Full payment", out[0].Label)
	assert.Equal(t, 1_500_000.0, out[0].Amount)
	assert.True(t, out[0].DueDate.Equal(start))
}

// The engine guarantees exact reconstruction: for any term count the
// installment amounts sum back to the total, with the last installment
// absorbing the rounding remainder.
func TestBuildInstallmentsPerTermSumLaw(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	totals := []float64{1_500_000, 1000, 999.99, 0.03, 100.10}
	for _, total := range totals {
		for n := 1; n <= 12; n++ {
			t.Run(fmt.Sprintf("total=%.2f terms=%d", total, n), func(t *testing.T) {
				out, err := BuildInstallments(GenerateInput{
					Type:      model.ScheduleTypePerTerm,
					Total:     total,
					TermCount: n,
					StartDate: start,
				})
				require.NoError(t, err)
				require.Len(t, out, n)
				assert.InDelta(t, total, sumInstallments(out), 0.001)

				for i, it := range out {
					assert.Equal(t, i+1, it.InstallmentNumber)
					assert.Equal(t, fmt.Sprintf("Term %d", i+1), it.Label)
					assert.GreaterOrEqual(t, it.Amount, 0.0)
				}
			})
		}
	}
}

func TestBuildInstallmentsPerTermDueDates(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	out, err := BuildInstallments(GenerateInput{
		Type:      model.ScheduleTypePerTerm,
		Total:     900,
		TermCount: 3,
		StartDate: start,
	})
	require.NoError(t, err)
	require.Len(t, out, 3)

	// 3 terms over 12 months: one due every 4 months.
	assert.True(t, out[0].DueDate.Equal(start))
	assert.True(t, out[1].DueDate.Equal(start.AddDate(0, 4, 0)))
	assert.True(t, out[2].DueDate.Equal(start.AddDate(0, 8, 0)))
}

func TestBuildInstallmentsPerTermRejectsBadTermCount(t *testing.T) {
	for _, n := range []int{0, -1, 13} {
		_, err := BuildInstallments(GenerateInput{
			Type:      model.ScheduleTypePerTerm,
			Total:     1000,
			TermCount: n,
		})
		assert.Error(t, err, "term count %d", n)
	}
}

func TestBuildInstallmentsMonthly(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	out, err := BuildInstallments(GenerateInput{
		Type:      model.ScheduleTypeMonthly,
		Total:     1000,
		StartDate: start,
	})
	require.NoError(t, err)
	require.Len(t, out, 12)
	assert.InDelta(t, 1000, sumInstallments(out), 0.001)

	// 1000/12 rounds to 83.33; the 12th absorbs the remainder.
	assert.Equal(t, 83.33, out[0].Amount)
	assert.Equal(t, 83.37, out[11].Amount)
	assert.Equal(t, "Month 12", out[11].Label)
	assert.True(t, out[5].DueDate.Equal(start.AddDate(0, 5, 0)))
}

// A tiny total split across many installments must never push the absorbing
// last installment below zero: per-installment amounts floor to the cent, so
// the remainder stays non-negative.
func TestBuildInstallmentsTinyTotalNeverNegative(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	out, err := BuildInstallments(GenerateInput{
		Type:      model.ScheduleTypeMonthly,
		Total:     0.10,
		StartDate: start,
	})
	require.NoError(t, err)
	require.Len(t, out, 12)
	assert.InDelta(t, 0.10, sumInstallments(out), 0.001)
	for _, it := range out {
		assert.GreaterOrEqual(t, it.Amount, 0.0)
	}
	// Everything lands in the absorbing installment.
	assert.Equal(t, 0.10, out[11].Amount)
}

func TestBuildInstallmentsCustom(t *testing.T) {
	custom := []model.Installment{
		{Label: "Registration", Amount: 200},
		{Label: "Mid-year", Amount: 300},
		{Label: "Final", Amount: 500},
	}

	out, err := BuildInstallments(GenerateInput{
		Type:   model.ScheduleTypeCustom,
		Total:  1000,
		Custom: custom,
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, it := range out {
		assert.Equal(t, i+1, it.InstallmentNumber)
	}
	assert.Equal(t, "Mid-year", out[1].Label)
}

func TestBuildInstallmentsCustomTolerance(t *testing.T) {
	// Off by half a cent still reconciles.
	_, err := BuildInstallments(GenerateInput{
		Type:   model.ScheduleTypeCustom,
		Total:  1000,
		Custom: []model.Installment{{Label: "A", Amount: 999.995}},
	})
	assert.NoError(t, err)

	// Off by two cents does not.
	_, err = BuildInstallments(GenerateInput{
		Type:   model.ScheduleTypeCustom,
		Total:  1000,
		Custom: []model.Installment{{Label: "A", Amount: 999.98}},
	})
	assert.Error(t, err)
}

func TestBuildInstallmentsCustomRejectsBadInput(t *testing.T) {
	_, err := BuildInstallments(GenerateInput{
		Type:  model.ScheduleTypeCustom,
		Total: 1000,
	})
	assert.Error(t, err, "empty installment list")

	_, err = BuildInstallments(GenerateInput{
		Type:  model.ScheduleTypeCustom,
		Total: 1000,
		Custom: []model.Installment{
			{Label: "A", Amount: 1100},
			{Label: "B", Amount: -100},
		},
	})
	assert.Error(t, err, "negative amount")
}

func TestBuildInstallmentsRejectsNonPositiveTotal(t *testing.T) {
	for _, total := range []float64{0, -10} {
		_, err := BuildInstallments(GenerateInput{
			Type:  model.ScheduleTypeUpfront,
			Total: total,
		})
		assert.Error(t, err, "total %.2f", total)
	}
}

func TestBuildInstallmentsUnknownType(t *testing.T) {
	_, err := BuildInstallments(GenerateInput{
		Type:  model.ScheduleType("weekly"),
		Total: 1000,
	})
	assert.Error(t, err)
}

func TestCheckDiscount(t *testing.T) {
	assert.NoError(t, CheckDiscount(0))
	assert.NoError(t, CheckDiscount(10))
	assert.NoError(t, CheckDiscount(50))
	assert.Error(t, CheckDiscount(-1))
	assert.Error(t, CheckDiscount(50.01))
}

func TestDiscountedTotal(t *testing.T) {
	assert.Equal(t, 1_350_000.0, DiscountedTotal(1_500_000, 10))
	assert.Equal(t, 1000.0, DiscountedTotal(1000, 0))
	assert.Equal(t, 50.0, DiscountedTotal(100, 50))
	// Rounds to cents.
	assert.Equal(t, 749.99, DiscountedTotal(999.99, 25))
}
