package samples

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

type stubOrderRepository struct {
	orders map[string]*models.Order
}

func (r *stubOrderRepository) Insert(_ context.Context, order *models.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepository) FindByID(_ context.Context, orderID string) (*models.Order, error) {
	return r.orders[orderID], nil
}

type stubSampleRepository struct {
	samples []models.Sample
	inserts int
}

func (r *stubSampleRepository) Insert(_ context.Context, sample *models.Sample) error {
	r.inserts++
	r.samples = append(r.samples, *sample)
	return nil
}

func (r *stubSampleRepository) FindByOrderAndTest(_ context.Context, orderID, testID string) (*models.Sample, error) {
	for i := range r.samples {
		if r.samples[i].OrderID == orderID && r.samples[i].TestID == testID {
			return &r.samples[i], nil
		}
	}
	return nil, nil
}

func (r *stubSampleRepository) FindByOrder(_ context.Context, orderID string) ([]models.Sample, error) {
	found := make([]models.Sample, 0)
	for _, sample := range r.samples {
		if sample.OrderID == orderID {
			found = append(found, sample)
		}
	}
	return found, nil
}

type stubObjectStorage struct {
	puts []string
}

func (s *stubObjectStorage) PutObject(_ context.Context, objectName string, _ []byte, _ string) (string, error) {
	s.puts = append(s.puts, objectName)
	return objectName, nil
}

type stubRedisRepository struct {
	keys map[string]bool
}

func (r *stubRedisRepository) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	r.keys[key] = true
	return nil
}

func (r *stubRedisRepository) Get(_ context.Context, _ string) (string, error) { return "", nil }

func (r *stubRedisRepository) Delete(_ context.Context, key string) error {
	delete(r.keys, key)
	return nil
}

func (r *stubRedisRepository) TrySetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	if r.keys[key] {
		return false, nil
	}
	r.keys[key] = true
	return true, nil
}

func labelTestOrder() *models.Order {
	return &models.Order{
		ID:      "ord-12345678",
		Patient: models.PatientRef{ID: "pat-1", Name: "Jordan Blake"},
		Tests: []models.SelectedTestEntry{
			{Test: models.LabTest{ID: "tst-hem-001", Name: "Complete Blood Count", SpecimenType: models.SpecimenBlood}},
			{Test: models.LabTest{ID: "tst-chem-002", Name: "Fasting Glucose", SpecimenType: models.SpecimenBlood}},
		},
		CreatedAt: time.Now(),
	}
}

func newTestLabelUsecase(order *models.Order) (*labelUsecase, *stubSampleRepository, *stubObjectStorage, *stubRedisRepository) {
	orderRepository := &stubOrderRepository{orders: map[string]*models.Order{}}
	if order != nil {
		orderRepository.orders[order.ID] = order
	}
	sampleRepository := &stubSampleRepository{}
	objectStorage := &stubObjectStorage{}
	redisRepository := &stubRedisRepository{keys: map[string]bool{}}
	usecase := &labelUsecase{
		OrderRepository:  orderRepository,
		SampleRepository: sampleRepository,
		ObjectStorage:    objectStorage,
		RedisRepository:  redisRepository,
		Log:              zap.NewNop(),
	}
	return usecase, sampleRepository, objectStorage, redisRepository
}

func TestGenerateLabelsReprintKeepsIdentifiers(t *testing.T) {
	order := labelTestOrder()
	usecase, sampleRepository, objectStorage, _ := newTestLabelUsecase(order)
	request := &requests.GenerateLabels{Copies: 1}

	first, err := usecase.GenerateLabels(context.Background(), order.ID, request)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 2, sampleRepository.inserts)

	second, err := usecase.GenerateLabels(context.Background(), order.ID, request)
	require.NoError(t, err)
	require.Len(t, second, 2)

	t.Run("identifiers survive the reprint", func(t *testing.T) {
		for i := range first {
			assert.Equal(t, first[i].SampleID, second[i].SampleID)
		}
		assert.Equal(t, 2, sampleRepository.inserts)
	})
	t.Run("reprint overwrites the same objects", func(t *testing.T) {
		require.Len(t, objectStorage.puts, 4)
		assert.Equal(t, objectStorage.puts[0], objectStorage.puts[2])
		assert.Equal(t, objectStorage.puts[1], objectStorage.puts[3])
	})
}

func TestGenerateLabelsLockHeld(t *testing.T) {
	order := labelTestOrder()
	usecase, sampleRepository, objectStorage, redisRepository := newTestLabelUsecase(order)
	redisRepository.keys["labdesk:label_lock:"+order.ID] = true

	_, err := usecase.GenerateLabels(context.Background(), order.ID, &requests.GenerateLabels{Copies: 1})
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 409, customErr.StatusCode)
	assert.Equal(t, 0, sampleRepository.inserts)
	assert.Empty(t, objectStorage.puts)
}

func TestGenerateLabelsLockReleasedAfterRun(t *testing.T) {
	order := labelTestOrder()
	usecase, _, _, redisRepository := newTestLabelUsecase(order)

	_, err := usecase.GenerateLabels(context.Background(), order.ID, &requests.GenerateLabels{Copies: 1})
	require.NoError(t, err)
	assert.Empty(t, redisRepository.keys)

	_, err = usecase.GenerateLabels(context.Background(), order.ID, &requests.GenerateLabels{Copies: 1})
	assert.NoError(t, err)
}

func TestListSamples(t *testing.T) {
	order := labelTestOrder()
	usecase, _, _, _ := newTestLabelUsecase(order)

	t.Run("empty before any print", func(t *testing.T) {
		records, err := usecase.ListSamples(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	_, err := usecase.GenerateLabels(context.Background(), order.ID, &requests.GenerateLabels{Copies: 1})
	require.NoError(t, err)

	t.Run("returns every generated sample", func(t *testing.T) {
		records, err := usecase.ListSamples(context.Background(), order.ID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "tst-hem-001", records[0].TestID)
		assert.Equal(t, "tst-chem-002", records[1].TestID)
		assert.NotEmpty(t, records[0].ObjectName)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := usecase.ListSamples(context.Background(), "ord-missing")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
