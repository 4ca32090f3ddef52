package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Birthdays must fall strictly between these dates.
var (
	minBirthday = time.Date(1922, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxBirthday = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// newValidator returns a validator that reports JSON field names and knows
// the "birthday" tag.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	// RegisterValidation only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("birthday", func(fl validator.FieldLevel) bool {
		_, err := parseBirthday(fl.Field().String())
		return err == nil
	})
	return v
}

// parseBirthday accepts YYYY-MM-DD or an RFC 3339 timestamp and checks the
// allowed range.
func parseBirthday(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q", value)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	if !t.After(minBirthday) || !t.Before(maxBirthday) {
		return time.Time{}, fmt.Errorf("date %s out of range", value)
	}
	return t, nil
}

// validationMessages turns every field error into a readable message.
func validationMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fieldMessage(e))
	}
	return messages
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "number":
		return fmt.Sprintf("%s must contain only digits", field)
	case "len":
		return fmt.Sprintf("%s must have exactly %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s characters", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "birthday":
		return fmt.Sprintf("%s must be a date between %s and %s", field,
			minBirthday.Format("2006-01-02"), maxBirthday.Format("2006-01-02"))
	default:
		return fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag())
	}
}
