package constvars

// Client-facing messages. Kept generic so internals never leak to callers.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientOrderDraftNotFound            = "Order session not found or already closed"
	ErrClientBillingSessionNotFound        = "Billing session not found or already closed"
	ErrClientOrderNotFound                 = "Order not found"
	ErrClientLabTestNotFound               = "Lab test not found"
	ErrClientNotificationNotFound          = "Notification not found or already finished"
	ErrClientStepNotReady                  = "Cannot proceed until the current step is complete"
	ErrClientUrgentNeedsJustification      = "Urgent and stat orders require a justification before submission"
	ErrClientPaymentFailed                 = "Payment could not be processed, please retry"
	ErrClientPaymentInputInvalid           = "Select a payment method and a non-negative amount before confirming"
	ErrClientLabelGenerationBusy           = "Labels for this order are being generated, please retry"
)

// Dev-facing messages, logged but only returned outside production.
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse request body as JSON"
	ErrDevCannotParseDate           = "cannot parse date value"
	ErrDevURLParamMissing           = "required URL parameter %s is missing"
	ErrDevCannotMarshalJSON         = "cannot marshal value to JSON"
	ErrDevServerDeadlineExceeded    = "request deadline exceeded"
	ErrDevMissingRequestID          = "request ID missing from context"
	ErrDevDBFailedToFindDocument    = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongodb failed to update document"
	ErrDevDBFailedToIterateDocument = "mongodb failed to iterate documents"
	ErrDevRedisSet                  = "redis failed to set key"
	ErrDevRedisGet                  = "redis failed to get key %s"
	ErrDevRedisDelete               = "redis failed to delete key"
	ErrDevMinioCreateObject         = "minio failed to store object in bucket %s"
	ErrDevRabbitMQPublish           = "rabbitmq failed to publish to queue %s"
	ErrDevOrderDraftNotFound        = "order draft session does not exist"
	ErrDevBillingSessionNotFound    = "billing session does not exist"
	ErrDevOrderNotFound             = "order document does not exist"
	ErrDevLabTestNotFound           = "lab test %s does not exist in the catalog or the draft"
	ErrDevNotificationNotFound      = "notification %s is not tracked"
	ErrDevStepGuardFailed           = "workflow guard failed: %s"
	ErrDevSubmitValidationFailed    = "order submit validation failed: %s"
	ErrDevUnknownTransition         = "unknown draft transition %s"
	ErrDevPaymentProcessorFailed    = "payment processor reported failure"
	ErrDevPaymentInputInvalid       = "payment input rejected: %s"
	ErrDevLabelGenerationBusy       = "label generation lock held for order %s"
)

// Validation tag messages consumed by exceptions.FormatFirstValidationError.
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"min":            "must be at least %s",
	"max":            "must be at most %s",
	"gte":            "must be greater than or equal to %s",
	"lte":            "must be less than or equal to %s",
	"oneof":          "must be one of: %s",
	"priority":       "must be routine, urgent or stat",
	"discount_kind":  "must be percentage or fixed",
	"payment_method": "must be cash, card, transfer or insurance",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
