package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"neardup/internal/common"
)

// NoIndex is the Index of a diagnostic that is not tied to a single item.
const NoIndex = -1

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Kind tells the caller what to correct.
	Kind Kind
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Field names the offending parameter or input (if any).
	Field string
	// Index is the position of the offending item, or NoIndex.
	Index int
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddConfigError adds a configuration error for the named parameter.
func (d *Diagnostics) AddConfigError(code, field, message string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Kind:     KindConfiguration,
		Code:     code,
		Message:  message,
		Field:    field,
		Index:    NoIndex,
	})
}

// AddInputError adds an input error for the item at index of the named input.
func (d *Diagnostics) AddInputError(code, field string, index int, message string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Kind:     KindInput,
		Code:     code,
		Message:  message,
		Field:    field,
		Index:    index,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, field, message string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Field:    field,
		Index:    NoIndex,
	})
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Err returns nil if valid, the single *Error if there is one, or all of
// them joined with errors.Join.
func (d *Diagnostics) Err() error {
	if d.IsValid() {
		return nil
	}

	if len(d.Errors) == 1 {
		return &Error{Diagnostic: d.Errors[0]}
	}

	errs := make([]error, len(d.Errors))
	for i := range d.Errors {
		errs[i] = &Error{Diagnostic: d.Errors[i]}
	}

	return errors.Join(errs...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	if d.Index != NoIndex {
		prefix = append(prefix, fmt.Sprintf("#%d", d.Index))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
