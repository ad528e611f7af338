package notifications

import (
	"context"
	"sync"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
	"labdesk-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	ResultNotifier  contracts.ResultNotifier
	DeliveryTracker contracts.DeliveryTracker
	Log             *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(
	resultNotifier contracts.ResultNotifier,
	deliveryTracker contracts.DeliveryTracker,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			ResultNotifier:  resultNotifier,
			DeliveryTracker: deliveryTracker,
			Log:             logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) NotifyResult(ctx context.Context, request *requests.ResultNotification) (*responses.QueuedNotification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.NotifyResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingTestIDKey, request.TestID),
	)

	result := &models.LabResult{
		OrderID:    request.OrderID,
		TestID:     request.TestID,
		PatientID:  request.PatientID,
		Value:      request.Value,
		Unit:       request.Unit,
		Flag:       models.ResultFlag(request.Flag),
		Priority:   models.OrderPriority(request.Priority),
		ReportedAt: time.Now(),
	}

	notificationID, err := uc.ResultNotifier.PublishResult(ctx, result)
	if err != nil {
		return nil, err
	}
	uc.DeliveryTracker.Track(notificationID)

	return &responses.QueuedNotification{
		NotificationID: notificationID,
		Status:         string(models.DeliverySending),
	}, nil
}

func (uc *notificationUsecase) DeliveryStatus(ctx context.Context, notificationID string) (*responses.QueuedNotification, error) {
	status, ok := uc.DeliveryTracker.Status(notificationID)
	if !ok {
		return nil, exceptions.ErrNotificationNotFound(notificationID)
	}
	return &responses.QueuedNotification{
		NotificationID: notificationID,
		Status:         string(status),
	}, nil
}

func (uc *notificationUsecase) CancelDelivery(ctx context.Context, notificationID string) error {
	if _, ok := uc.DeliveryTracker.Status(notificationID); !ok {
		return exceptions.ErrNotificationNotFound(notificationID)
	}
	uc.DeliveryTracker.Cancel(notificationID)
	return nil
}
