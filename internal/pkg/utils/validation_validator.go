package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("priority", validatePriority)
	validate.RegisterValidation("discount_kind", validateDiscountKind)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePriority(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "routine" || value == "urgent" || value == "stat"
}

func validateDiscountKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == "percentage" || value == "fixed"
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "cash", "card", "transfer", "insurance":
		return true
	}
	return false
}
