package samples

import (
	"context"
	"fmt"
	"sync"
	"time"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/dto/requests"
	"labdesk-service/internal/pkg/dto/responses"
	"labdesk-service/internal/pkg/exceptions"
	"labdesk-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultLabelSize = "medium"
	labelLockTTL     = 15 * time.Second
)

type labelUsecase struct {
	OrderRepository  contracts.OrderRepository
	SampleRepository contracts.SampleRepository
	ObjectStorage    contracts.ObjectStorage
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
}

var (
	labelUsecaseInstance contracts.LabelUsecase
	onceLabelUsecase     sync.Once
)

func NewLabelUsecase(
	orderRepository contracts.OrderRepository,
	sampleRepository contracts.SampleRepository,
	objectStorage contracts.ObjectStorage,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.LabelUsecase {
	onceLabelUsecase.Do(func() {
		labelUsecaseInstance = &labelUsecase{
			OrderRepository:  orderRepository,
			SampleRepository: sampleRepository,
			ObjectStorage:    objectStorage,
			RedisRepository:  redisRepository,
			Log:              logger,
		}
	})
	return labelUsecaseInstance
}

// labelDocument is the rendered artifact stored per sample. The presentation
// settings pass through untouched; rendering happens on the print client.
type labelDocument struct {
	SampleID       string              `json:"sample_id"`
	OrderID        string              `json:"order_id"`
	TestID         string              `json:"test_id"`
	TestName       string              `json:"test_name"`
	SpecimenType   models.SpecimenType `json:"specimen_type"`
	PatientName    string              `json:"patient_name"`
	CollectionDate string              `json:"collection_date,omitempty"`
	LabelSize      string              `json:"label_size"`
	Copies         int                 `json:"copies"`
	IncludeQR      bool                `json:"include_qr"`
	IncludeBarcode bool                `json:"include_barcode"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

// GenerateLabels produces one label per ordered test. The sample identifier
// is generated on first call for each (order, test) pair and persisted, so a
// reprint renders the same code even though the generator is timestamped.
func (uc *labelUsecase) GenerateLabels(ctx context.Context, orderID string, request *requests.GenerateLabels) ([]responses.SampleLabel, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labelUsecase.GenerateLabels called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}

	// Concurrent prints of the same order would race on the first-write of
	// each sample identifier. First caller wins the lock.
	lockKey := fmt.Sprintf(constvars.RedisKeyLabelLockFormat, order.ID)
	acquired, err := uc.RedisRepository.TrySetNX(ctx, lockKey, requestID, labelLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrLabelGenerationBusy(order.ID)
	}
	defer func() {
		_ = uc.RedisRepository.Delete(ctx, lockKey)
	}()

	labelSize := request.LabelSize
	if labelSize == "" {
		labelSize = defaultLabelSize
	}

	labels := make([]responses.SampleLabel, 0, len(order.Tests))
	for _, entry := range order.Tests {
		sample, err := uc.SampleRepository.FindByOrderAndTest(ctx, order.ID, entry.Test.ID)
		if err != nil {
			return nil, err
		}
		if sample == nil {
			now := time.Now()
			sample = &models.Sample{
				SampleID:     GenerateSampleID(order.ID, entry.Test.ID, now),
				OrderID:      order.ID,
				TestID:       entry.Test.ID,
				SpecimenType: entry.Test.SpecimenType,
				GeneratedAt:  now,
			}
			sample.LabelObject = utils.GenerateLabelObjectName(order.ID, sample.SampleID)
			err = uc.SampleRepository.Insert(ctx, sample)
			if err != nil {
				return nil, err
			}
		}

		document := labelDocument{
			SampleID:       sample.SampleID,
			OrderID:        order.ID,
			TestID:         entry.Test.ID,
			TestName:       entry.Test.Name,
			SpecimenType:   entry.Test.SpecimenType,
			PatientName:    order.Patient.Name,
			LabelSize:      labelSize,
			Copies:         request.Copies,
			IncludeQR:      request.IncludeQR,
			IncludeBarcode: request.IncludeBarcode,
			GeneratedAt:    sample.GeneratedAt,
		}
		if !order.CollectionDate.IsZero() {
			document.CollectionDate = utils.FormatDate(order.CollectionDate)
		}
		body, err := json.Marshal(document)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}

		// Reprints overwrite the same object, so the stored label always
		// reflects the latest presentation settings.
		objectName, err := uc.ObjectStorage.PutObject(ctx, sample.LabelObject, body, constvars.MIMEApplicationJSON)
		if err != nil {
			return nil, err
		}

		labels = append(labels, responses.SampleLabel{
			SampleID:       sample.SampleID,
			OrderID:        order.ID,
			TestID:         entry.Test.ID,
			TestName:       entry.Test.Name,
			SpecimenType:   entry.Test.SpecimenType,
			LabelSize:      labelSize,
			Copies:         request.Copies,
			IncludeQR:      request.IncludeQR,
			IncludeBarcode: request.IncludeBarcode,
			ObjectName:     objectName,
			GeneratedAt:    sample.GeneratedAt.Format(time.RFC3339),
		})
	}

	uc.Log.Info("labelUsecase.GenerateLabels labels generated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.Int("label_count", len(labels)),
	)
	return labels, nil
}

// ListSamples returns every identifier already generated for the order, in
// insertion order. An order with no printed labels yet returns an empty list.
func (uc *labelUsecase) ListSamples(ctx context.Context, orderID string) ([]responses.SampleRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labelUsecase.ListSamples called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}

	samples, err := uc.SampleRepository.FindByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	records := make([]responses.SampleRecord, 0, len(samples))
	for _, sample := range samples {
		records = append(records, responses.SampleRecord{
			SampleID:     sample.SampleID,
			OrderID:      sample.OrderID,
			TestID:       sample.TestID,
			SpecimenType: sample.SpecimenType,
			ObjectName:   sample.LabelObject,
			GeneratedAt:  sample.GeneratedAt.Format(time.RFC3339),
		})
	}
	return records, nil
}
