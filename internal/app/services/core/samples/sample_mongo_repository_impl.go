package samples

import (
	"context"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SampleMongoRepository struct {
	Collection *mongo.Collection
}

func NewSampleMongoRepository(db *mongo.Client, dbName string) contracts.SampleRepository {
	return &SampleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSamples),
	}
}

func (repo *SampleMongoRepository) Insert(ctx context.Context, sample *models.Sample) error {
	_, err := repo.Collection.InsertOne(ctx, sample)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *SampleMongoRepository) FindByOrderAndTest(ctx context.Context, orderID, testID string) (*models.Sample, error) {
	var sample models.Sample
	err := repo.Collection.FindOne(ctx, bson.M{"order_id": orderID, "test_id": testID}).Decode(&sample)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &sample, nil
}

func (repo *SampleMongoRepository) FindByOrder(ctx context.Context, orderID string) ([]models.Sample, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Sample
	err = cursor.All(ctx, &result)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}
