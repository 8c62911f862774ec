package api

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in violations use
// the json tag, matching the wire representation of the request payloads.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// required only rejects the empty string; a whitespace-only value must
	// also count as blank.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}

	return v
}

// fieldBounds holds the length bounds for every validated string field,
// keyed by wire field name. It must stay in sync with the validate tags
// on the request payloads in models.go.
var fieldBounds = map[string][2]int{
	"title":   {1, 64},
	"content": {1, 256},
	"message": {1, 256},
}

// ValidateRequest checks a request payload against its declared
// constraints and returns one violation per failed constraint, or nil
// when the payload is valid. It runs before any domain logic so invalid
// input never reaches the service layer.
func ValidateRequest(req interface{}) []ErrorDetails {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable if req is not a struct, which is a programming
		// error rather than a client fault.
		panic(fmt.Sprintf("ValidateRequest called with non-struct: %v", err))
	}

	violations := make([]ErrorDetails, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, ErrorDetails{
			Field:         fieldErr.Field(),
			RejectedValue: fieldErr.Value(),
			Message:       violationMessage(fieldErr),
		})
	}
	return violations
}

// violationMessage renders the constraint message for a single field
// violation, mirroring the wording clients rely on.
func violationMessage(fieldErr validator.FieldError) string {
	label := capitalize(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s cannot be empty", label)
	case "min", "max":
		bounds, ok := fieldBounds[fieldErr.Field()]
		if !ok {
			return fmt.Sprintf("%s has invalid length", label)
		}
		return fmt.Sprintf("%s must be between %d and %d characters",
			label, bounds[0], bounds[1])
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// ValidatePathID parses a path parameter that must be a positive integer.
// On success it returns the parsed ID and nil. On failure it returns a
// single violation carrying the rejected value: the parsed integer when
// the raw text is numeric, the raw text otherwise.
func ValidatePathID(field, raw string) (int64, []ErrorDetails) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, []ErrorDetails{{
			Field:         field,
			RejectedValue: raw,
			Message:       "must be greater than 0",
		}}
	}

	if id <= 0 {
		return 0, []ErrorDetails{{
			Field:         field,
			RejectedValue: id,
			Message:       "must be greater than 0",
		}}
	}

	return id, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
