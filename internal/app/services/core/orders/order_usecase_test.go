package orders

import (
	"context"
	"testing"
	"time"

	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplyTransitionSetPriority(t *testing.T) {
	usecase := &orderUsecase{Log: zap.NewNop()}

	t.Run("empty priority is rejected", func(t *testing.T) {
		draft := NewOrderDraft("sess-1", time.Now())
		err := usecase.applyTransition(context.Background(), draft, &requests.OrderDraftTransition{
			Action: requests.OrderActionSetPriority,
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, models.PriorityRoutine, draft.Priority)
	})

	t.Run("valid priority is applied", func(t *testing.T) {
		draft := NewOrderDraft("sess-2", time.Now())
		err := usecase.applyTransition(context.Background(), draft, &requests.OrderDraftTransition{
			Action:   requests.OrderActionSetPriority,
			Priority: string(models.PriorityUrgent),
		})
		require.NoError(t, err)
		assert.Equal(t, models.PriorityUrgent, draft.Priority)
	})
}
