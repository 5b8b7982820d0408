package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	// Register custom validators
	registerCustomValidators(validate)

	// Use JSON field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errors[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long", field, err.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s characters long", field, err.Param())
		case "password":
			errors[field] = "password must contain at least 8 characters with uppercase, lowercase, number and special character"
		case "language_code":
			errors[field] = "language must be a two-letter ISO 639-1 code"
		case "feature_name":
			errors[field] = "feature name must contain only lowercase letters, numbers and underscores"
		case "url":
			errors[field] = fmt.Sprintf("%s must be a valid URL", field)
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: errors}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Password validation: at least 8 chars with upper, lower, number and special char
	validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		if len(password) < 8 {
			return false
		}

		hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
		hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
		hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
		hasSpecial := regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`).MatchString(password)

		return hasUpper && hasLower && hasNumber && hasSpecial
	})

	// Language code validation: two-letter ISO 639-1 code
	validate.RegisterValidation("language_code", func(fl validator.FieldLevel) bool {
		lang := fl.Field().String()
		matched, _ := regexp.MatchString(`^[a-z]{2}$`, lang)
		return matched
	})

	// Feature name validation: lowercase letters, numbers, underscores
	validate.RegisterValidation("feature_name", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		matched, _ := regexp.MatchString(`^[a-z0-9_]+$`, name)
		return matched && len(name) >= 2 && len(name) <= 64
	})
}

// Helper validation functions

// IsValidEmail checks if an email is valid
func IsValidEmail(email string) bool {
	v := New()
	return v.ValidateVar(email, "required,email") == nil
}

// IsValidPassword checks if a password meets security requirements
func IsValidPassword(password string) bool {
	v := New()
	return v.ValidateVar(password, "required,password") == nil
}

// IsValidLanguageCode checks if a language preference is valid
func IsValidLanguageCode(lang string) bool {
	v := New()
	return v.ValidateVar(lang, "required,language_code") == nil
}

// IsValidFeatureName checks if a feature name is well formed
func IsValidFeatureName(name string) bool {
	v := New()
	return v.ValidateVar(name, "required,feature_name") == nil
}

// Common validation tags constants
const (
	TagRequired     = "required"
	TagEmail        = "email"
	TagPassword     = "password"
	TagLanguage     = "language_code"
	TagFeatureName  = "feature_name"
	TagMin          = "min"
	TagMax          = "max"
	TagURL          = "url"
)
