package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateOrderID() string {
	return uuid.NewString()
}

func GenerateLabelObjectName(orderID, sampleID string) string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("labels/%s/%s_%s.json", orderID, sampleID, timestamp)
}
