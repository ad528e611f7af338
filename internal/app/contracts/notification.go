package contracts

import (
	"context"

	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
)

// ResultNotifier hands a completed result to the notification collaborator.
// Channel and template selection happen on the consumer side.
type ResultNotifier interface {
	PublishResult(ctx context.Context, result *models.LabResult) (string, error)
}

// DeliveryTracker follows a dispatched notification through
// sending -> sent -> delivered -> read. Cancel discards pending transitions
// for a dropped session instead of running them against stale state.
type DeliveryTracker interface {
	Track(notificationID string)
	Status(notificationID string) (models.DeliveryStatus, bool)
	Cancel(notificationID string)
	Stop()
}

type NotificationUsecase interface {
	NotifyResult(ctx context.Context, request *requests.ResultNotification) (*responses.QueuedNotification, error)
	DeliveryStatus(ctx context.Context, notificationID string) (*responses.QueuedNotification, error)
	CancelDelivery(ctx context.Context, notificationID string) error
}
