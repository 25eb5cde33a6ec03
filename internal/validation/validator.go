// Kinograph - Knowledge-Graph Movie Recommendations
// Copyright 2026 The Kinograph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinograph/kinograph

// Package validation checks request structs with go-playground/validator v10.
// One shared validator serves the whole process, extended with a movietitle
// rule and with message translation for failed tags.
//
// Features:
//   - A single validator, built on first use, struct metadata cached
//   - movietitle validator for user-supplied title strings
//   - Failed tags translated into the VALIDATION_ERROR message format
//   - WithRequiredStructEnabled, matching the upcoming v11 default
//
// Example usage:
//
//	type SearchRequest struct {
//	    Name  string `validate:"required,min=1,max=200,movietitle"`
//	    Limit int    `validate:"min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	initOnce sync.Once
)

// GetValidator returns the shared validator instance, creating it on first
// use. Safe for concurrent callers.
func GetValidator() *validator.Validate {
	initOnce.Do(func() {
		instance = newValidator()
	})
	return instance
}

// newValidator builds the validator and registers Kinograph's custom rules.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// movietitle: user-supplied title text must not carry control
	// characters. Catalog titles never contain them, and letting them
	// through corrupts log lines and search output.
	//
	//nolint:errcheck // registration only fails for a nil function
	v.RegisterValidation("movietitle", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
	})

	return v
}

// ValidateStruct runs the shared validator over s. A nil return means every
// tag passed. Otherwise the result carries one entry per failed field, each
// already translated to a readable message.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// validator.InvalidValidationError or similar: s was not a
		// struct. Surface it as a single opaque entry.
		return &RequestValidationError{errors: []ValidationError{{
			field:   "unknown",
			tag:     "unknown",
			message: err.Error(),
		}}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: translate(fe),
		})
	}
	return &RequestValidationError{errors: out}
}

// ValidationError is one failed field with its tag, parameter, and a
// translated message.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the struct field name that failed.
func (e *ValidationError) Field() string { return e.field }

// Tag names the rule that rejected the field.
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter, e.g. "10" for "max=10".
func (e *ValidationError) Param() string { return e.param }

// Value returns the rejected value.
func (e *ValidationError) Value() interface{} { return e.value }

// Error returns the translated message.
func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed field from one ValidateStruct
// call.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual field errors.
func (ve *RequestValidationError) Errors() []ValidationError { return ve.errors }

// Error joins the field messages with "; ".
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve.errors))
	for i, e := range ve.errors {
		parts[i] = e.message
	}
	return strings.Join(parts, "; ")
}

// APIError mirrors the handler layer's error shape so this package does not
// import internal/api.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the collected errors into the VALIDATION_ERROR
// response format. A single failure keeps its message and field detail; for
// several failures the messages are joined and the details list every field.
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.errors) {
	case 0:
		return &APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}

	case 1:
		e := ve.errors[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: e.message,
			Details: map[string]interface{}{
				"field": e.field,
				"tag":   e.tag,
				"value": e.value,
			},
		}

	default:
		fields := make([]map[string]interface{}, len(ve.errors))
		msgs := make([]string, len(ve.errors))
		for i, e := range ve.errors {
			fields[i] = map[string]interface{}{
				"field":   e.field,
				"tag":     e.tag,
				"message": e.message,
			}
			msgs[i] = fmt.Sprintf("%s: %s", e.field, e.message)
		}
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: strings.Join(msgs, "; "),
			Details: map[string]interface{}{"fields": fields},
		}
	}
}

// translate turns a validator.FieldError into the message the API returns.
// Length tags on strings speak in characters; numeric tags speak in values.
func translate(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "movietitle":
		return field + " must not contain control characters"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
