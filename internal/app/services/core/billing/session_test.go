package billing

import (
	"testing"
	"time"

	"labdesk-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	items := []models.BillingLineItem{
		{TestID: "LT-001", TestName: "Complete Blood Count", UnitPrice: 150, Quantity: 1, DiscountKind: models.DiscountFixed},
		{TestID: "LT-002", TestName: "Urinalysis", UnitPrice: 50, Quantity: 1, DiscountKind: models.DiscountFixed},
	}
	return NewSession("sess-1", "order-1", items, nil, 0, time.Now())
}

func TestSessionAdvance(t *testing.T) {
	t.Run("Billing to payment requires at least one item", func(t *testing.T) {
		session := NewSession("sess-1", "order-1", nil, nil, 0, time.Now())

		err := session.Advance()
		var gateErr *GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, GateLineItemsPresent, gateErr.Reason)
		assert.Equal(t, StepBilling, session.Step)
	})

	t.Run("Advance with items moves to payment", func(t *testing.T) {
		session := newTestSession()

		require.NoError(t, session.Advance())
		assert.Equal(t, StepPayment, session.Step)
	})

	t.Run("Advance from payment is blocked", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.Advance())

		err := session.Advance()
		var gateErr *GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, GateSessionAtPayment, gateErr.Reason)
	})
}

func TestSessionBackPreservesInputs(t *testing.T) {
	session := newTestSession()
	session.SetGlobalDiscount(models.Discount{Kind: models.DiscountPercentage, Value: 10})
	session.SetTaxRate(15)
	require.True(t, session.SetItemDiscount("LT-001", models.DiscountFixed, 20))
	require.NoError(t, session.Advance())

	session.Back()

	assert.Equal(t, StepBilling, session.Step)
	assert.Equal(t, models.Discount{Kind: models.DiscountPercentage, Value: 10}, session.GlobalDiscount)
	assert.Equal(t, 15.0, session.TaxRatePercent)
	assert.Equal(t, 20.0, session.Items[0].DiscountValue)
}

func TestSessionSetItemDiscount(t *testing.T) {
	session := newTestSession()

	assert.True(t, session.SetItemDiscount("LT-002", models.DiscountPercentage, 50))
	assert.False(t, session.SetItemDiscount("LT-404", models.DiscountFixed, 5))

	result := session.Compute()
	assert.Equal(t, 175.0, result.Subtotal)
}

func TestPreparePayment(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("Blocked outside the payment step", func(t *testing.T) {
		session := newTestSession()

		_, err := session.PreparePayment(models.PaymentMethodCash, 200, now)
		var gateErr *GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, GateSessionAtPayment, gateErr.Reason)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.Advance())

		_, err := session.PreparePayment(models.PaymentMethodCash, -1, now)
		var gateErr *GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, GateAmountNonNegative, gateErr.Reason)
	})

	t.Run("Missing method rejected", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.Advance())

		_, err := session.PreparePayment("", 200, now)
		var gateErr *GateError
		require.ErrorAs(t, err, &gateErr)
		assert.Equal(t, GateMethodSelected, gateErr.Reason)
	})

	t.Run("Full payment yields paid status and zero balance", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.Advance())

		record, err := session.PreparePayment(models.PaymentMethodCard, 200, now)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, record.Status)
		assert.Equal(t, 0.0, record.RemainingBalance)
		assert.Equal(t, "order-1", record.OrderID)
	})

	t.Run("Overpayment keeps balance floored at zero", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.Advance())

		record, err := session.PreparePayment(models.PaymentMethodCash, 500, now)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, record.Status)
		assert.Equal(t, 0.0, record.RemainingBalance)
	})

	t.Run("Partial payment yields partial status and the difference", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.Advance())

		record, err := session.PreparePayment(models.PaymentMethodCash, 80, now)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPartial, record.Status)
		assert.Equal(t, 120.0, record.RemainingBalance)
	})

	t.Run("Prepare does not mutate the session", func(t *testing.T) {
		session := newTestSession()
		require.NoError(t, session.Advance())

		_, err := session.PreparePayment(models.PaymentMethodCash, 200, now)
		require.NoError(t, err)
		assert.Equal(t, StepPayment, session.Step)
		assert.Nil(t, session.Payment)
	})
}

func TestCommitPayment(t *testing.T) {
	session := newTestSession()
	require.NoError(t, session.Advance())

	record, err := session.PreparePayment(models.PaymentMethodTransfer, 200, time.Now())
	require.NoError(t, err)
	session.CommitPayment(record)

	assert.Equal(t, StepConfirmation, session.Step)
	assert.Equal(t, record, session.Payment)
}

func TestSessionComputeRefreshesLineTotals(t *testing.T) {
	session := newTestSession()
	require.True(t, session.SetItemDiscount("LT-001", models.DiscountPercentage, 10))

	result := session.Compute()

	assert.Equal(t, 135.0, session.Items[0].LineTotal)
	assert.Equal(t, 185.0, result.Subtotal)
}
