package payments

import (
	"context"
	"sync"
	"time"

	"labdesk-service/internal/app/config"
	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// simulatedProcessor stands in for a card/transfer gateway. It waits for the
// configured latency and honors context cancellation, so a caller timeout
// surfaces as a processing failure instead of a hung request.
type simulatedProcessor struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	paymentProcessorInstance contracts.PaymentProcessor
	oncePaymentProcessor     sync.Once
)

func NewSimulatedProcessor(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentProcessor {
	oncePaymentProcessor.Do(func() {
		paymentProcessorInstance = &simulatedProcessor{
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return paymentProcessorInstance
}

func (p *simulatedProcessor) Process(ctx context.Context, record *models.PaymentRecord) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("simulatedProcessor.Process called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, record.OrderID),
		zap.String("method", string(record.Method)),
		zap.Float64("amount_charged", record.AmountCharged),
	)

	latency := time.Duration(p.InternalConfig.Payment.SimulatedLatencyInMillisecond) * time.Millisecond
	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.Log.Error("simulatedProcessor.Process canceled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, record.OrderID),
			zap.Error(ctx.Err()),
		)
		return ctx.Err()
	case <-timer.C:
	}

	record.Reference = buildReference(record)
	return nil
}

func buildReference(record *models.PaymentRecord) string {
	return "PAY-" + record.OrderID + "-" + record.ProcessedAt.Format("20060102150405")
}
