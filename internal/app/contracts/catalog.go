package contracts

import (
	"context"

	"labdesk-service/internal/app/models"
)

// LabTestRepository supplies the orderable test catalog. Read-only.
type LabTestRepository interface {
	FindAll(ctx context.Context) ([]models.LabTest, error)
}

type CatalogUsecase interface {
	ListTests(ctx context.Context, search string) ([]models.LabTest, error)
	FindTestByID(ctx context.Context, testID string) (*models.LabTest, error)
}
