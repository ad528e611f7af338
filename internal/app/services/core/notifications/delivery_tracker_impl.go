package notifications

import (
	"sync"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"

	"go.uber.org/zap"
)

type trackedDelivery struct {
	status models.DeliveryStatus
	timer  *time.Timer
}

// deliveryTracker advances each tracked notification through
// sending -> sent -> delivered -> read on a fixed interval. Cancel drops the
// pending timer so no transition runs against a discarded notification.
type deliveryTracker struct {
	mu            sync.Mutex
	deliveries    map[string]*trackedDelivery
	stageInterval time.Duration
	stopped       bool
	Log           *zap.Logger
}

var (
	deliveryTrackerInstance contracts.DeliveryTracker
	onceDeliveryTracker     sync.Once
)

func NewDeliveryTracker(stageInterval time.Duration, logger *zap.Logger) contracts.DeliveryTracker {
	onceDeliveryTracker.Do(func() {
		deliveryTrackerInstance = &deliveryTracker{
			deliveries:    make(map[string]*trackedDelivery),
			stageInterval: stageInterval,
			Log:           logger,
		}
	})
	return deliveryTrackerInstance
}

func (t *deliveryTracker) Track(notificationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if existing, ok := t.deliveries[notificationID]; ok {
		if existing.timer != nil {
			existing.timer.Stop()
		}
	}
	delivery := &trackedDelivery{status: models.DeliverySending}
	t.deliveries[notificationID] = delivery
	delivery.timer = time.AfterFunc(t.stageInterval, func() {
		t.advance(notificationID)
	})
}

func (t *deliveryTracker) Status(notificationID string) (models.DeliveryStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delivery, ok := t.deliveries[notificationID]
	if !ok {
		return "", false
	}
	return delivery.status, true
}

func (t *deliveryTracker) Cancel(notificationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delivery, ok := t.deliveries[notificationID]
	if !ok {
		return
	}
	if delivery.timer != nil {
		delivery.timer.Stop()
	}
	delete(t.deliveries, notificationID)
}

func (t *deliveryTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	for id, delivery := range t.deliveries {
		if delivery.timer != nil {
			delivery.timer.Stop()
		}
		delete(t.deliveries, id)
	}
}

func (t *deliveryTracker) advance(notificationID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delivery, ok := t.deliveries[notificationID]
	if !ok || t.stopped {
		return
	}

	next := nextStatus(delivery.status)
	if next == "" {
		return
	}
	delivery.status = next
	t.Log.Debug("deliveryTracker.advance",
		zap.String("notification_id", notificationID),
		zap.String("status", string(next)),
	)
	if next != models.DeliveryRead {
		delivery.timer = time.AfterFunc(t.stageInterval, func() {
			t.advance(notificationID)
		})
	}
}

func nextStatus(status models.DeliveryStatus) models.DeliveryStatus {
	switch status {
	case models.DeliverySending:
		return models.DeliverySent
	case models.DeliverySent:
		return models.DeliveryDelivered
	case models.DeliveryDelivered:
		return models.DeliveryRead
	}
	return ""
}
