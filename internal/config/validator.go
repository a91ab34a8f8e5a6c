package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Custom validation for directory path existence (basic check).
	_ = validate.RegisterValidation("dirpath", func(fl validator.FieldLevel) bool {
		dirPath := fl.Field().String()
		if dirPath == "" {
			return true // Optional field
		}
		info, err := os.Stat(dirPath)
		if os.IsNotExist(err) {
			return false
		}
		return err == nil && info.IsDir()
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			first := validationErrors[0]
			return fmt.Errorf("config validation failed on field '%s' (rule '%s', value '%v')",
				first.Namespace(), first.Tag(), first.Value())
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
