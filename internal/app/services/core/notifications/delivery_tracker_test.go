package notifications

import (
	"testing"
	"time"

	"labdesk-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTracker(interval time.Duration) *deliveryTracker {
	return &deliveryTracker{
		deliveries:    make(map[string]*trackedDelivery),
		stageInterval: interval,
		Log:           zap.NewNop(),
	}
}

func waitForStatus(t *testing.T, tracker *deliveryTracker, id string, want models.DeliveryStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		status, ok := tracker.Status(id)
		require.True(t, ok, "notification %s dropped while waiting for %s", id, want)
		if status == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	status, _ := tracker.Status(id)
	t.Fatalf("notification %s stuck at %s, wanted %s", id, status, want)
}

func TestDeliveryTrackerProgression(t *testing.T) {
	tracker := newTestTracker(10 * time.Millisecond)
	defer tracker.Stop()

	tracker.Track("n-1")

	status, ok := tracker.Status("n-1")
	require.True(t, ok)
	assert.Equal(t, models.DeliverySending, status)

	waitForStatus(t, tracker, "n-1", models.DeliverySent)
	waitForStatus(t, tracker, "n-1", models.DeliveryDelivered)
	waitForStatus(t, tracker, "n-1", models.DeliveryRead)

	// Read is terminal.
	time.Sleep(30 * time.Millisecond)
	status, ok = tracker.Status("n-1")
	require.True(t, ok)
	assert.Equal(t, models.DeliveryRead, status)
}

func TestDeliveryTrackerCancel(t *testing.T) {
	tracker := newTestTracker(20 * time.Millisecond)
	defer tracker.Stop()

	tracker.Track("n-1")
	tracker.Cancel("n-1")

	_, ok := tracker.Status("n-1")
	assert.False(t, ok)

	// No pending transition fires after cancellation.
	time.Sleep(60 * time.Millisecond)
	_, ok = tracker.Status("n-1")
	assert.False(t, ok)
}

func TestDeliveryTrackerCancelUnknownIsNoop(t *testing.T) {
	tracker := newTestTracker(10 * time.Millisecond)
	defer tracker.Stop()

	tracker.Cancel("missing")

	_, ok := tracker.Status("missing")
	assert.False(t, ok)
}

func TestDeliveryTrackerStop(t *testing.T) {
	tracker := newTestTracker(10 * time.Millisecond)

	tracker.Track("n-1")
	tracker.Track("n-2")
	tracker.Stop()

	_, ok := tracker.Status("n-1")
	assert.False(t, ok)
	_, ok = tracker.Status("n-2")
	assert.False(t, ok)

	// Tracking after stop is ignored.
	tracker.Track("n-3")
	_, ok = tracker.Status("n-3")
	assert.False(t, ok)
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, models.DeliverySent, nextStatus(models.DeliverySending))
	assert.Equal(t, models.DeliveryDelivered, nextStatus(models.DeliverySent))
	assert.Equal(t, models.DeliveryRead, nextStatus(models.DeliveryDelivered))
	assert.Equal(t, models.DeliveryStatus(""), nextStatus(models.DeliveryRead))
}
