package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodeRule accepts a 3-letter alphabetic code, case-insensitive.
// Codes are uppercased at the service boundary, so "huf" and "HUF" are the
// same currency.
func currencyCodeRule(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// RegisterValidators installs custom binding rules on gin's validator engine.
// Must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", currencyCodeRule)
}
