package contracts

import (
	"context"

	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
)

// SampleRepository persists generated sample identifiers so a reprint reuses
// the identifier shown on the first label.
type SampleRepository interface {
	Insert(ctx context.Context, sample *models.Sample) error
	FindByOrderAndTest(ctx context.Context, orderID, testID string) (*models.Sample, error)
	FindByOrder(ctx context.Context, orderID string) ([]models.Sample, error)
}

type LabelUsecase interface {
	GenerateLabels(ctx context.Context, orderID string, request *requests.GenerateLabels) ([]responses.SampleLabel, error)
	ListSamples(ctx context.Context, orderID string) ([]responses.SampleRecord, error)
}
