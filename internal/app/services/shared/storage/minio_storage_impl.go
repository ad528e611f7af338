package storage

import (
	"bytes"
	"context"
	"sync"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

var (
	minioStorageInstance contracts.ObjectStorage
	onceMinioStorage     sync.Once
)

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.ObjectStorage {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			MinioClient: minioClient,
			BucketName:  bucketName,
		}
	})
	return minioStorageInstance
}

func (m *minioStorage) PutObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return objectName, nil
}
