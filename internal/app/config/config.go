package config

import (
	"labdesk-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "labdesk"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "labdesk-labels"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			OrderDraftTTLInMinute:     utils.GetEnvInt("APP_ORDER_DRAFT_TTL_IN_MINUTE", 120),
			BillingSessionTTLInMinute: utils.GetEnvInt("APP_BILLING_SESSION_TTL_IN_MINUTE", 120),
		},
		Billing: Billing{
			DefaultTaxRatePercent:     utils.GetEnvFloat("BILLING_DEFAULT_TAX_RATE_PERCENT", 0),
			DefaultCoveragePercentage: utils.GetEnvFloat("BILLING_DEFAULT_COVERAGE_PERCENTAGE", 80),
			DefaultMaxCoverage:        utils.GetEnvFloat("BILLING_DEFAULT_MAX_COVERAGE", 10000),
			DefaultDeductible:         utils.GetEnvFloat("BILLING_DEFAULT_DEDUCTIBLE", 100),
		},
		Payment: Payment{
			SimulatedLatencyInMillisecond: utils.GetEnvInt("PAYMENT_SIMULATED_LATENCY_IN_MILLISECOND", 1500),
		},
		Notification: Notification{
			ResultQueue:                utils.GetEnvString("NOTIFICATION_RESULT_QUEUE", "labdesk.result-notifications"),
			StageIntervalInMillisecond: utils.GetEnvInt("NOTIFICATION_STAGE_INTERVAL_IN_MILLISECOND", 2000),
			PublishRatePerSecond:       utils.GetEnvFloat("NOTIFICATION_PUBLISH_RATE_PER_SECOND", 20),
			PublishBurst:               utils.GetEnvInt("NOTIFICATION_PUBLISH_BURST", 5),
		},
	}
}
