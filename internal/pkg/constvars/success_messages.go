package constvars

const (
	LabTestListSuccessMessage        = "Successfully retrieved lab test catalog"
	OrderDraftCreatedSuccessMessage  = "Order session created"
	OrderDraftFetchedSuccessMessage  = "Order session retrieved"
	OrderDraftUpdatedSuccessMessage  = "Order session updated"
	OrderDraftClosedSuccessMessage   = "Order session closed"
	OrderSubmittedSuccessMessage     = "Order submitted"
	OrderFetchedSuccessMessage       = "Order retrieved"
	BillingSessionCreatedMessage     = "Billing session created"
	BillingSessionFetchedMessage     = "Billing session retrieved"
	BillingSessionUpdatedMessage     = "Billing session updated"
	PaymentRecordedSuccessMessage    = "Payment recorded"
	SampleLabelsGeneratedMessage     = "Sample labels generated"
	SamplesFetchedMessage            = "Samples retrieved"
	ResultNotificationQueuedMessage  = "Result notification queued"
	NotificationStatusFetchedMessage = "Notification status retrieved"
	NotificationCanceledMessage      = "Notification tracking canceled"
)
