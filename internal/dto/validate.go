package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations installs the decimal string checks referenced by
// binding tags in this package. Call once at startup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("amountstr", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.Sign() >= 0
	})
	_ = v.RegisterValidation("percentstr", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.Sign() >= 0 && d.LessThanOrEqual(decimal.NewFromInt(100))
	})
}
