package domain

import (
	"fmt"
	"strings"
)

// ValidationError lists every field that failed validation on a record.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// validator accumulates field errors for one entity.
type validator struct {
	entity string
	fields []FieldError
}

func newValidator(entity string) *validator {
	return &validator{entity: entity}
}

func (v *validator) add(field, format string, args ...any) {
	v.fields = append(v.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) floatRange(field string, p *float64, lo, hi float64) {
	if p != nil && (*p < lo || *p > hi) {
		v.add(field, "must be between %g and %g, got %g", lo, hi, *p)
	}
}

func (v *validator) intRange(field string, p *int, lo, hi int) {
	if p != nil && (*p < lo || *p > hi) {
		v.add(field, "must be between %d and %d, got %d", lo, hi, *p)
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: v.entity, Fields: v.fields}
}

// CheckFloatRange returns an error when p is set and outside [lo, hi].
// Rule predicates use it to reject malformed log fields.
func CheckFloatRange(field string, p *float64, lo, hi float64) error {
	if p != nil && (*p < lo || *p > hi) {
		return fmt.Errorf("%s out of range [%g, %g]: %g", field, lo, hi, *p)
	}
	return nil
}

// CheckIntRange is the *int counterpart of CheckFloatRange.
func CheckIntRange(field string, p *int, lo, hi int) error {
	if p != nil && (*p < lo || *p > hi) {
		return fmt.Errorf("%s out of range [%d, %d]: %d", field, lo, hi, *p)
	}
	return nil
}
