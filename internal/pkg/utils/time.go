package utils

import (
	"time"

	"labdesk-service/internal/pkg/constvars"
)

func ParseDate(value string) (time.Time, error) {
	return time.Parse(constvars.AppDateFormat, value)
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.AppDateFormat)
}
