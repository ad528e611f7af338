package catalog

import (
	"context"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LabTestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRepository {
	return &LabTestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTests),
	}
}

func (repo *LabTestMongoRepository) FindAll(ctx context.Context) ([]models.LabTest, error) {
	var tests []models.LabTest
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &tests)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tests, nil
}
