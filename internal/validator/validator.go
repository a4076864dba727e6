// Package validator provides a custom Validator type for accumulating
// field-level validation errors and returning them as a map.
package validator

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validator holds a map of field names to their validation error messages.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(port > 0, "port", "must be a positive integer")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Merge records every field error carried by an ozzo-validation result.
// Anything that is not a field error (an internal rule failure) is
// returned untouched so the caller can treat it as a server error.
func (v *Validator) Merge(err error) error {
	if err == nil {
		return nil
	}

	var fields validation.Errors
	if !errors.As(err, &fields) {
		return err
	}

	for key, fieldErr := range fields {
		if fieldErr != nil {
			v.AddError(key, fieldErr.Error())
		}
	}
	return nil
}

// FirstFailed returns the first key of keys that has an error recorded,
// or "" when none of them failed.
func (v *Validator) FirstFailed(keys ...string) string {
	for _, key := range keys {
		if _, failed := v.Errors[key]; failed {
			return key
		}
	}
	return ""
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}
