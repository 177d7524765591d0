package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingField is the user-facing "please fill in all required fields" error
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidField means a field is present but not an accepted value
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidTransition is returned when a status change would leave a terminal state
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNoSession is returned by role-guarded operations when nobody is logged in
	ErrNoSession = errors.New("please login to access this page")
	// ErrForbiddenRole is returned when the session's role may not use a page
	ErrForbiddenRole = errors.New("forbidden for this role")
	// ErrNotFound is returned by lookups of a single record
	ErrNotFound = errors.New("not found")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their JSON names so messages match what users submit
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

// validateInput runs struct validation and folds the result into ErrMissingField or ErrInvalidField
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	var missing, invalid []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fe.Field())
	}

	if len(missing) > 0 {
		return missingField(missing...)
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(invalid, ", "))
}

func missingField(fields ...string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(fields, ", "))
}
