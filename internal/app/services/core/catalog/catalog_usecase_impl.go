package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type catalogUsecase struct {
	LabTestRepository contracts.LabTestRepository
	RedisRepository   contracts.RedisRepository
	Log               *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

func NewCatalogUsecase(
	labTestRepository contracts.LabTestRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		instance := &catalogUsecase{
			LabTestRepository: labTestRepository,
			RedisRepository:   redisRepository,
			Log:               logger,
		}
		catalogUsecaseInstance = instance
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) ListTests(ctx context.Context, search string) ([]models.LabTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ListTests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	tests, err := uc.loadCatalog(ctx, requestID)
	if err != nil {
		return nil, err
	}

	search = utils.TruncateRunes(search, constvars.AppMaxCatalogSearchLen)
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return tests, nil
	}

	filtered := make([]models.LabTest, 0, len(tests))
	for _, test := range tests {
		if matchesTest(test, search) {
			filtered = append(filtered, test)
		}
	}
	return filtered, nil
}

func (uc *catalogUsecase) FindTestByID(ctx context.Context, testID string) (*models.LabTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.FindTestByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestIDKey, testID),
	)

	tests, err := uc.loadCatalog(ctx, requestID)
	if err != nil {
		return nil, err
	}
	for i := range tests {
		if tests[i].ID == testID {
			return &tests[i], nil
		}
	}
	return nil, nil
}

// loadCatalog reads the catalog through a Redis cache-aside. A cache failure
// falls back to the repository rather than failing the request.
func (uc *catalogUsecase) loadCatalog(ctx context.Context, requestID string) ([]models.LabTest, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyLabTestCatalog)
	if err != nil {
		uc.Log.Error("catalogUsecase.loadCatalog error reading catalog cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var tests []models.LabTest
		if err := json.Unmarshal([]byte(cached), &tests); err == nil {
			return tests, nil
		}
		uc.Log.Error("catalogUsecase.loadCatalog cached catalog is not valid JSON, refetching",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	tests, err := uc.LabTestRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("catalogUsecase.loadCatalog error fetching catalog from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyLabTestCatalog, tests, 10*time.Minute)
	if err != nil {
		uc.Log.Error("catalogUsecase.loadCatalog error caching catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return tests, nil
}

// matchesTest is a case-insensitive substring match on id, code, name and
// category. No other filtering contract exists for the catalog.
func matchesTest(test models.LabTest, search string) bool {
	return strings.Contains(strings.ToLower(test.ID), search) ||
		strings.Contains(strings.ToLower(test.Code), search) ||
		strings.Contains(strings.ToLower(test.Name), search) ||
		strings.Contains(strings.ToLower(test.Category), search)
}
