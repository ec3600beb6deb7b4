package services

import (
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank rejects strings that are only whitespace, which required lets through.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("garment_size", func(fl validator.FieldLevel) bool {
		return models.ValidSize(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}
