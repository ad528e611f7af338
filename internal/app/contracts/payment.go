package contracts

import (
	"context"

	"labdesk-service/internal/app/models"
)

// PaymentProcessor charges a payment. A non-nil error means the attempt
// failed and must be retried by the caller; the billing session is left
// untouched.
type PaymentProcessor interface {
	Process(ctx context.Context, record *models.PaymentRecord) error
}
