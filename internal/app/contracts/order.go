package contracts

import (
	"context"

	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
)

// OrderRepository persists submitted orders. Insert is called exactly once
// per successful workflow submission.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
}

type OrderUsecase interface {
	CreateDraftSession(ctx context.Context) (*responses.OrderDraftSession, error)
	GetDraftSession(ctx context.Context, sessionID string) (*responses.OrderDraftSession, error)
	ApplyTransition(ctx context.Context, sessionID string, request *requests.OrderDraftTransition) (*responses.OrderDraftSession, error)
	Submit(ctx context.Context, sessionID string) (*responses.SubmittedOrder, error)
	CloseDraftSession(ctx context.Context, sessionID string) error
	FindOrderByID(ctx context.Context, orderID string) (*models.Order, error)
}
