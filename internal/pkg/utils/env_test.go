package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Missing variable returns default", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("LABDESK_TEST_MISSING", "fallback"))
		assert.Equal(t, 7, GetEnvInt("LABDESK_TEST_MISSING", 7))
		assert.Equal(t, true, GetEnvBool("LABDESK_TEST_MISSING", true))
		assert.Equal(t, 1.5, GetEnvFloat("LABDESK_TEST_MISSING", 1.5))
	})

	t.Run("Set variable is parsed by type", func(t *testing.T) {
		t.Setenv("LABDESK_TEST_STRING", "value")
		t.Setenv("LABDESK_TEST_INT", "42")
		t.Setenv("LABDESK_TEST_BOOL", "true")
		t.Setenv("LABDESK_TEST_FLOAT", "80.5")

		assert.Equal(t, "value", GetEnvString("LABDESK_TEST_STRING", "fallback"))
		assert.Equal(t, 42, GetEnvInt("LABDESK_TEST_INT", 7))
		assert.Equal(t, true, GetEnvBool("LABDESK_TEST_BOOL", false))
		assert.Equal(t, 80.5, GetEnvFloat("LABDESK_TEST_FLOAT", 1.5))
	})

	t.Run("Unparseable value falls back to default", func(t *testing.T) {
		t.Setenv("LABDESK_TEST_INT", "not-a-number")
		t.Setenv("LABDESK_TEST_FLOAT", "also-not")

		assert.Equal(t, 7, GetEnvInt("LABDESK_TEST_INT", 7))
		assert.Equal(t, 1.5, GetEnvFloat("LABDESK_TEST_FLOAT", 1.5))
	})
}
