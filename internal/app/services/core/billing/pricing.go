package billing

import (
	"labdesk-service/internal/app/models"
)

// ComputeLineTotal prices a single line item. A percentage discount is taken
// on the gross (unit price times quantity); a fixed discount is subtracted
// directly. The result is deliberately not clamped at zero: a discount larger
// than the item price passes through as a negative line total.
func ComputeLineTotal(item models.BillingLineItem) float64 {
	gross := item.UnitPrice * float64(item.Quantity)
	var discount float64
	if item.DiscountKind == models.DiscountPercentage {
		discount = gross * item.DiscountValue / 100
	} else {
		discount = item.DiscountValue
	}
	return gross - discount
}

// ComputeBilling derives the full monetary breakdown from current inputs. It
// holds no state across calls; every caller re-derives from scratch so the
// preview, summary and confirmation views agree by construction.
//
// The step order is fixed for reproducibility: line totals, subtotal, global
// discount, tax, total, then the insurance cascade (deductible first, then
// the coverage percentage, capped by max coverage and clamped at zero).
func ComputeBilling(
	items []models.BillingLineItem,
	globalDiscount models.Discount,
	taxRatePercent float64,
	claim *models.InsuranceClaim,
	payingWithInsurance bool,
) models.BillingComputation {
	var subtotal float64
	for _, item := range items {
		subtotal += ComputeLineTotal(item)
	}

	var globalDiscountAmount float64
	if globalDiscount.Kind == models.DiscountPercentage {
		globalDiscountAmount = subtotal * globalDiscount.Value / 100
	} else {
		globalDiscountAmount = globalDiscount.Value
	}

	afterDiscount := subtotal - globalDiscountAmount
	taxAmount := afterDiscount * taxRatePercent / 100
	total := afterDiscount + taxAmount

	var insuranceCoverageAmount float64
	if payingWithInsurance && claim != nil {
		maxCoverable := total - claim.Deductible
		if claim.MaxCoverage < maxCoverable {
			maxCoverable = claim.MaxCoverage
		}
		insuranceCoverageAmount = maxCoverable * claim.CoveragePercentage / 100
		if insuranceCoverageAmount < 0 {
			insuranceCoverageAmount = 0
		}
	}

	return models.BillingComputation{
		Subtotal:                subtotal,
		GlobalDiscountAmount:    globalDiscountAmount,
		TaxAmount:               taxAmount,
		Total:                   total,
		InsuranceCoverageAmount: insuranceCoverageAmount,
		PatientResponsibility:   total - insuranceCoverageAmount,
	}
}
