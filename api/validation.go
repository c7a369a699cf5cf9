package api

import (
	"strings"

	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the project tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("property_kind", func(fl validator.FieldLevel) bool {
		return domain.PropertyKind(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}
