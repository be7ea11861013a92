package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	cnPhoneRegex   = regexp.MustCompile(`^1[3-9]\d{9}$`)
	configKeyRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// cnphone: mainland mobile number, the only phone format the product accepts
	v.RegisterValidation("cnphone", func(fl validator.FieldLevel) bool {
		return cnPhoneRegex.MatchString(fl.Field().String())
	})

	// configkey: [a-zA-Z0-9_.]+
	v.RegisterValidation("configkey", func(fl validator.FieldLevel) bool {
		return configKeyRegex.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "cnphone":
				errors[field] = field + " must be a valid mobile number"
			case "configkey":
				errors[field] = field + " may only contain letters, digits, underscore and dot"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
