// file: internals/features/finance/fee_structures/service/validate.go
package service

import (
	"fmt"
	"math"
	"strings"

	model "schoolfee_backend/internals/features/finance/fee_structures/model"
	helper "schoolfee_backend/internals/helpers"
)

// AmountTolerance: absolute tolerance when reconciling a category sum
// against a stored total. Amounts are numeric(14,2), so anything past one
// cent is a real mismatch.
const AmountTolerance = 0.01

func SumAmounts(amounts []float64) float64 {
	var sum float64
	for _, a := range amounts {
		sum += a
	}
	return sum
}

// Reconciles reports whether itemSum equals total within AmountTolerance.
func Reconciles(itemSum, total float64) bool {
	return math.Abs(itemSum-total) <= AmountTolerance
}

// CheckReconciliation is the ValidationError-producing form used by the
// authoring handlers.
func CheckReconciliation(itemSum, total float64) error {
	if !Reconciles(itemSum, total) {
		return helper.NewFieldValidationError("total_amount",
			fmt.Sprintf("category amounts (%.2f) do not sum to total_amount (%.2f)", itemSum, total))
	}
	return nil
}

// NormalizeProgramType lowers/trims a program type so the "all" sentinel
// compares reliably.
func NormalizeProgramType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckCrossMode enforces the per-year exclusivity between the "all"
// sentinel and grade-specific structures: once either mode exists for a
// year, the other mode is rejected.
func CheckCrossMode(newProgramType string, hasAll, hasGradeSpecific bool) error {
	if NormalizeProgramType(newProgramType) == model.ProgramTypeAll {
		if hasGradeSpecific {
			return helper.NewConflictError(
				"grade-specific fee structures already exist for this academic year; an \"all\" structure cannot coexist with them")
		}
		return nil
	}
	if hasAll {
		return helper.NewConflictError(
			"an \"all programs\" fee structure already exists for this academic year; grade-specific structures cannot coexist with it")
	}
	return nil
}

// CheckStatusTransition guards the draft → published → archived machine.
func CheckStatusTransition(from, to model.FeeStructureStatus) error {
	switch {
	case from == model.FeeStructureStatusDraft && to == model.FeeStructureStatusPublished:
		return nil
	case from == model.FeeStructureStatusPublished && to == model.FeeStructureStatusArchived:
		return nil
	default:
		return helper.NewConflictError(
			fmt.Sprintf("cannot change fee structure status from %s to %s", from, to))
	}
}
