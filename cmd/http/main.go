package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labdesk-service/internal/app/config"
	"labdesk-service/internal/app/delivery/http/controllers"
	"labdesk-service/internal/app/delivery/http/middlewares"
	"labdesk-service/internal/app/delivery/http/routers"
	"labdesk-service/internal/app/drivers/database"
	"labdesk-service/internal/app/drivers/logger"
	"labdesk-service/internal/app/drivers/messaging"
	driverstorage "labdesk-service/internal/app/drivers/storage"
	"labdesk-service/internal/app/services/core/billing"
	"labdesk-service/internal/app/services/core/catalog"
	"labdesk-service/internal/app/services/core/notifications"
	"labdesk-service/internal/app/services/core/orders"
	"labdesk-service/internal/app/services/core/payments"
	"labdesk-service/internal/app/services/core/samples"
	sharedredis "labdesk-service/internal/app/services/shared/redis"
	"labdesk-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	zapLogger.Info("Server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	objectStorage := storage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	// Middlewares
	httpMiddlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// Catalog
	labTestMongoRepository := catalog.NewLabTestMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	catalogUsecase := catalog.NewCatalogUsecase(labTestMongoRepository, redisRepository, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Orders
	orderMongoRepository := orders.NewOrderMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	draftStore := orders.NewDraftRedisStore(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.OrderDraftTTLInMinute)*time.Minute,
	)
	orderUsecase := orders.NewOrderUsecase(orderMongoRepository, catalogUsecase, draftStore, bootstrap.Logger)
	orderController := controllers.NewOrderController(bootstrap.Logger, orderUsecase)

	// Billing & payments
	sessionStore := billing.NewSessionRedisStore(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.BillingSessionTTLInMinute)*time.Minute,
	)
	paymentProcessor := payments.NewSimulatedProcessor(bootstrap.InternalConfig, bootstrap.Logger)
	billingUsecase := billing.NewBillingUsecase(
		orderMongoRepository,
		sessionStore,
		paymentProcessor,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	billingController := controllers.NewBillingController(bootstrap.Logger, billingUsecase)

	// Samples & labels
	sampleMongoRepository := samples.NewSampleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	labelUsecase := samples.NewLabelUsecase(orderMongoRepository, sampleMongoRepository, objectStorage, redisRepository, bootstrap.Logger)
	labelController := controllers.NewLabelController(bootstrap.Logger, labelUsecase)

	// Result notifications
	resultPublisher, err := notifications.NewResultPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Notification.ResultQueue,
		bootstrap.InternalConfig.Notification.PublishRatePerSecond,
		bootstrap.InternalConfig.Notification.PublishBurst,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize result publisher", zap.Error(err))
	}
	deliveryTracker := notifications.NewDeliveryTracker(
		time.Duration(bootstrap.InternalConfig.Notification.StageIntervalInMillisecond)*time.Millisecond,
		bootstrap.Logger,
	)
	bootstrap.TrackerStop = deliveryTracker.Stop
	notificationUsecase := notifications.NewNotificationUsecase(resultPublisher, deliveryTracker, bootstrap.Logger)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		catalogController,
		orderController,
		billingController,
		labelController,
		notificationController,
	)
}
