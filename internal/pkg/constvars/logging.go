package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingEndpointKey     = "endpoint"
	LoggingMethodKey       = "method"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingOperationKey    = "operation"
	LoggingSessionIDKey    = "session_id"
	LoggingOrderIDKey      = "order_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingTestIDKey       = "test_id"
	LoggingSampleIDKey     = "sample_id"
	LoggingNotificationKey = "notification_id"
	LoggingStepKey         = "step"
)
