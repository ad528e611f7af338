package contracts

import (
	"context"

	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
)

type BillingUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateBillingSession) (*responses.BillingSessionState, error)
	GetSession(ctx context.Context, sessionID string) (*responses.BillingSessionState, error)
	ApplyInput(ctx context.Context, sessionID string, request *requests.BillingSessionUpdate) (*responses.BillingSessionState, error)
	Pay(ctx context.Context, sessionID string, request *requests.PayRequest) (*responses.PaymentResult, error)
}
