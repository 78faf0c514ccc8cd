// Package apperror maps input validation failures to user-facing messages.
package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired        = errors.New("is required")
	errMustBePositive  = errors.New("must be greater than zero")
	errMustNotBeNeg    = errors.New("must not be negative")
	errPercentRange    = errors.New("must be between 0 and 100")
	errInvalidDate     = errors.New("must be a date in YYYY-MM-DD format")
	errInvalidMealSlot = errors.New("must be breakfast, lunch, dinner, or snack")
)

var customErrors = map[string]error{
	"CustomFoodInput.Name.required":      errRequired,
	"CustomFoodInput.Calories.required":  errRequired,
	"CustomFoodInput.Calories.gte":       errMustNotBeNeg,
	"CustomFoodInput.Protein.gte":        errMustNotBeNeg,
	"CustomFoodInput.Carbs.gte":          errMustNotBeNeg,
	"CustomFoodInput.Fat.gte":            errMustNotBeNeg,
	"CustomFoodInput.Fiber.gte":          errMustNotBeNeg,
	"CustomFoodInput.Meal.oneof":         errInvalidMealSlot,
	"BodyMetricInput.Weight.gt":          errMustBePositive,
	"BodyMetricInput.Date.datetime":      errInvalidDate,
	"BodyMetricInput.BodyFatPercent.gte": errPercentRange,
	"BodyMetricInput.BodyFatPercent.lte": errPercentRange,
	"BodyMetricInput.MuscleMass.gte":     errMustNotBeNeg,
	"BodyMetricInput.VisceralFat.gte":    errMustNotBeNeg,
}

// FieldError is one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of one input.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// CustomValidationError converts validator errors into field messages.
func CustomValidationError(err error) []FieldError {
	errList := make([]FieldError, 0)

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			field := e.StructNamespace()
			key := field + "." + e.Tag()

			errMsg := "is invalid"
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}
			errList = append(errList, FieldError{Field: fieldLabel(e.Field()), Message: errMsg})
		}
	}
	return errList
}

// Validate runs v against s and wraps failures in a *ValidationError.
func Validate(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	fields := CustomValidationError(err)
	if len(fields) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}
	return &ValidationError{Fields: fields}
}

// fieldLabel turns a Go field name into the lower-case label shown to users.
func fieldLabel(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
