// file: internals/features/finance/fee_structures/service/validate_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "schoolfee_backend/internals/features/finance/fee_structures/model"
)

func TestReconciles(t *testing.T) {
	assert.True(t, Reconciles(1000, 1000))
	assert.True(t, Reconciles(999.995, 1000), "half a cent is within tolerance")
	assert.True(t, Reconciles(1000.005, 1000), "sub-cent drift is within tolerance")
	assert.False(t, Reconciles(1000.02, 1000))
	assert.False(t, Reconciles(999.98, 1000))

	// Classic float accumulation: 0.1+0.2 against 0.3 must still reconcile.
	assert.True(t, Reconciles(SumAmounts([]float64{0.1, 0.2}), 0.3))
}

func TestCheckReconciliation(t *testing.T) {
	assert.NoError(t, CheckReconciliation(1_500_000, 1_500_000))

	err := CheckReconciliation(1_400_000, 1_500_000)
	assert.Error(t, err)
}

func TestSumAmounts(t *testing.T) {
	assert.Equal(t, 0.0, SumAmounts(nil))
	assert.InDelta(t, 1_500_000, SumAmounts([]float64{1_000_000, 300_000, 200_000}), 0.001)
}

func TestNormalizeProgramType(t *testing.T) {
	assert.Equal(t, model.ProgramTypeAll, NormalizeProgramType("  ALL "))
	assert.Equal(t, "day", NormalizeProgramType("Day"))
}

func TestCheckCrossMode(t *testing.T) {
	// First structure of either mode is always allowed.
	assert.NoError(t, CheckCrossMode("all", false, false))
	assert.NoError(t, CheckCrossMode("boarding", false, false))

	// Same mode stacks freely.
	assert.NoError(t, CheckCrossMode("boarding", false, true))
	assert.NoError(t, CheckCrossMode("all", true, false))

	// Cross-mode is rejected in both directions.
	assert.Error(t, CheckCrossMode("all", false, true))
	assert.Error(t, CheckCrossMode("boarding", true, false))

	// The sentinel compares case-insensitively.
	assert.Error(t, CheckCrossMode("All", false, true))
}

func TestCheckStatusTransition(t *testing.T) {
	assert.NoError(t, CheckStatusTransition(model.FeeStructureStatusDraft, model.FeeStructureStatusPublished))
	assert.NoError(t, CheckStatusTransition(model.FeeStructureStatusPublished, model.FeeStructureStatusArchived))

	// Everything else is closed, including no-ops and rollbacks.
	assert.Error(t, CheckStatusTransition(model.FeeStructureStatusDraft, model.FeeStructureStatusArchived))
	assert.Error(t, CheckStatusTransition(model.FeeStructureStatusPublished, model.FeeStructureStatusDraft))
	assert.Error(t, CheckStatusTransition(model.FeeStructureStatusArchived, model.FeeStructureStatusPublished))
	assert.Error(t, CheckStatusTransition(model.FeeStructureStatusDraft, model.FeeStructureStatusDraft))
}
