package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
)

const (
	AppTimeFormat          = "2006-01-02T15:04:05Z07:00"
	AppDateFormat          = "2006-01-02"
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
	AppDefaultedPageSize   = 20
	AppMaxCatalogSearchLen = 120
)

const (
	MongoCollectionLabTests = "lab_tests"
	MongoCollectionOrders   = "lab_orders"
	MongoCollectionSamples  = "lab_samples"
)

const (
	RedisKeyLabTestCatalog    = "labdesk:catalog:lab_tests"
	RedisKeyOrderDraftFormat  = "labdesk:order_draft:%s"
	RedisKeyBillingSessFormat = "labdesk:billing_session:%s"
	RedisKeyLabelLockFormat   = "labdesk:label_lock:%s"
)

const (
	ResponseSuccess = "success"
	ResponseUnknown = "unknown"
)
