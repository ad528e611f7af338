package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App          App
		Billing      Billing
		Payment      Payment
		Notification Notification
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		OrderDraftTTLInMinute     int
		BillingSessionTTLInMinute int
	}

	Billing struct {
		DefaultTaxRatePercent     float64
		DefaultCoveragePercentage float64
		DefaultMaxCoverage        float64
		DefaultDeductible         float64
	}

	Payment struct {
		SimulatedLatencyInMillisecond int
	}

	Notification struct {
		ResultQueue                string
		StageIntervalInMillisecond int
		PublishRatePerSecond       float64
		PublishBurst               int
	}
)
