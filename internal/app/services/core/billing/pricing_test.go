package billing

import (
	"testing"

	"labdesk-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func twoTestItems() []models.BillingLineItem {
	return []models.BillingLineItem{
		{TestID: "LT-001", TestName: "Complete Blood Count", UnitPrice: 150, Quantity: 1, DiscountKind: models.DiscountFixed},
		{TestID: "LT-002", TestName: "Urinalysis", UnitPrice: 50, Quantity: 1, DiscountKind: models.DiscountFixed},
	}
}

func TestComputeLineTotal(t *testing.T) {
	t.Run("No discount", func(t *testing.T) {
		item := models.BillingLineItem{UnitPrice: 150, Quantity: 2, DiscountKind: models.DiscountFixed}
		assert.Equal(t, 300.0, ComputeLineTotal(item))
	})

	t.Run("Percentage discount on gross", func(t *testing.T) {
		item := models.BillingLineItem{UnitPrice: 100, Quantity: 2, DiscountKind: models.DiscountPercentage, DiscountValue: 25}
		assert.Equal(t, 150.0, ComputeLineTotal(item))
	})

	t.Run("Fixed discount subtracted directly", func(t *testing.T) {
		item := models.BillingLineItem{UnitPrice: 100, Quantity: 1, DiscountKind: models.DiscountFixed, DiscountValue: 30}
		assert.Equal(t, 70.0, ComputeLineTotal(item))
	})

	t.Run("Fixed discount larger than price is not clamped", func(t *testing.T) {
		item := models.BillingLineItem{UnitPrice: 40, Quantity: 1, DiscountKind: models.DiscountFixed, DiscountValue: 100}
		assert.Equal(t, -60.0, ComputeLineTotal(item))
	})
}

func TestComputeBilling(t *testing.T) {
	t.Run("Global percentage discount and tax", func(t *testing.T) {
		result := ComputeBilling(
			twoTestItems(),
			models.Discount{Kind: models.DiscountPercentage, Value: 10},
			15,
			nil,
			false,
		)

		assert.Equal(t, 200.0, result.Subtotal)
		assert.Equal(t, 20.0, result.GlobalDiscountAmount)
		assert.Equal(t, 27.0, result.TaxAmount)
		assert.Equal(t, 207.0, result.Total)
		assert.Equal(t, 0.0, result.InsuranceCoverageAmount)
		assert.Equal(t, 207.0, result.PatientResponsibility)
	})

	t.Run("Insurance cascade with deductible and coverage cap", func(t *testing.T) {
		claim := &models.InsuranceClaim{
			CoveragePercentage: 80,
			MaxCoverage:        10000,
			Deductible:         100,
		}
		result := ComputeBilling(
			twoTestItems(),
			models.Discount{Kind: models.DiscountPercentage, Value: 10},
			15,
			claim,
			true,
		)

		assert.Equal(t, 207.0, result.Total)
		assert.InDelta(t, 85.6, result.InsuranceCoverageAmount, 1e-9)
		assert.InDelta(t, 121.4, result.PatientResponsibility, 1e-9)
	})

	t.Run("Max coverage caps the coverable amount", func(t *testing.T) {
		claim := &models.InsuranceClaim{
			CoveragePercentage: 100,
			MaxCoverage:        50,
			Deductible:         0,
		}
		result := ComputeBilling(twoTestItems(), models.Discount{Kind: models.DiscountFixed}, 0, claim, true)

		assert.Equal(t, 200.0, result.Total)
		assert.Equal(t, 50.0, result.InsuranceCoverageAmount)
		assert.Equal(t, 150.0, result.PatientResponsibility)
	})

	t.Run("Deductible above total clamps coverage at zero", func(t *testing.T) {
		claim := &models.InsuranceClaim{
			CoveragePercentage: 80,
			MaxCoverage:        10000,
			Deductible:         500,
		}
		result := ComputeBilling(twoTestItems(), models.Discount{Kind: models.DiscountFixed}, 0, claim, true)

		assert.Equal(t, 0.0, result.InsuranceCoverageAmount)
		assert.Equal(t, result.Total, result.PatientResponsibility)
	})

	t.Run("Paying with insurance but no claim configured", func(t *testing.T) {
		result := ComputeBilling(
			twoTestItems(),
			models.Discount{Kind: models.DiscountPercentage, Value: 10},
			15,
			nil,
			true,
		)

		assert.Equal(t, 207.0, result.Total)
		assert.Equal(t, 0.0, result.InsuranceCoverageAmount)
		assert.Equal(t, 207.0, result.PatientResponsibility)
	})

	t.Run("Claim configured but not paying with insurance", func(t *testing.T) {
		claim := &models.InsuranceClaim{CoveragePercentage: 80, MaxCoverage: 10000, Deductible: 100}
		result := ComputeBilling(twoTestItems(), models.Discount{Kind: models.DiscountFixed}, 0, claim, false)

		assert.Equal(t, 0.0, result.InsuranceCoverageAmount)
		assert.Equal(t, result.Total, result.PatientResponsibility)
	})

	t.Run("Negative line total flows through the subtotal", func(t *testing.T) {
		items := []models.BillingLineItem{
			{TestID: "LT-001", UnitPrice: 40, Quantity: 1, DiscountKind: models.DiscountFixed, DiscountValue: 100},
			{TestID: "LT-002", UnitPrice: 100, Quantity: 1, DiscountKind: models.DiscountFixed},
		}
		result := ComputeBilling(items, models.Discount{Kind: models.DiscountFixed}, 0, nil, false)

		assert.Equal(t, 40.0, result.Subtotal)
	})

	t.Run("Empty item list", func(t *testing.T) {
		result := ComputeBilling(nil, models.Discount{Kind: models.DiscountFixed}, 15, nil, false)

		assert.Equal(t, 0.0, result.Subtotal)
		assert.Equal(t, 0.0, result.Total)
		assert.Equal(t, 0.0, result.PatientResponsibility)
	})

	t.Run("Total identity holds for mixed discounts", func(t *testing.T) {
		items := []models.BillingLineItem{
			{TestID: "LT-001", UnitPrice: 120, Quantity: 2, DiscountKind: models.DiscountPercentage, DiscountValue: 15},
			{TestID: "LT-002", UnitPrice: 75, Quantity: 1, DiscountKind: models.DiscountFixed, DiscountValue: 10},
		}
		result := ComputeBilling(items, models.Discount{Kind: models.DiscountFixed, Value: 25}, 11, nil, false)

		afterDiscount := result.Subtotal - result.GlobalDiscountAmount
		assert.InDelta(t, afterDiscount+result.TaxAmount, result.Total, 1e-9)
		assert.InDelta(t, result.Total-result.InsuranceCoverageAmount, result.PatientResponsibility, 1e-9)
	})
}
