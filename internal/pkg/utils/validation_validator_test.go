package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type priorityProbe struct {
	Priority string `validate:"required,priority"`
}

type discountProbe struct {
	Kind string `validate:"discount_kind"`
}

type methodProbe struct {
	Method string `validate:"required,payment_method"`
}

func TestCustomValidators(t *testing.T) {
	t.Run("Priority accepts the three levels", func(t *testing.T) {
		for _, value := range []string{"routine", "urgent", "stat"} {
			assert.NoError(t, ValidateStruct(priorityProbe{Priority: value}), value)
		}
		assert.Error(t, ValidateStruct(priorityProbe{Priority: "asap"}))
	})

	t.Run("Discount kind allows empty", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(discountProbe{}))
		assert.NoError(t, ValidateStruct(discountProbe{Kind: "percentage"}))
		assert.NoError(t, ValidateStruct(discountProbe{Kind: "fixed"}))
		assert.Error(t, ValidateStruct(discountProbe{Kind: "bogo"}))
	})

	t.Run("Payment method rejects unknown values", func(t *testing.T) {
		for _, value := range []string{"cash", "card", "transfer", "insurance"} {
			assert.NoError(t, ValidateStruct(methodProbe{Method: value}), value)
		}
		assert.Error(t, ValidateStruct(methodProbe{Method: "crypto"}))
	})
}
