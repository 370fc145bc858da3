package store

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// FieldError names one invalid or missing transaction field.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError is a rejected mutation: the full set of offending fields.
// Callers can react per field instead of parsing a log line.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fe.Error()
	}
	return "invalid transaction: " + strings.Join(msgs, "; ")
}

// FieldNames returns just the offending field names, in check order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		names[i] = fe.Field
	}
	return names
}

// Validate checks a complete transaction record. It returns nil or a
// *ValidationError listing every violated rule. Date parseability and the
// not-in-the-future rule belong to the input-collection boundary; here the
// date only has to be present.
func Validate(tx model.Transaction) error {
	var fields []FieldError

	if tx.ID == "" {
		fields = append(fields, FieldError{"id", "must be present"})
	}
	if !tx.Type.Valid() {
		fields = append(fields, FieldError{"type", `must be "income" or "expense"`})
	}
	if !(tx.Amount > 0) {
		fields = append(fields, FieldError{"amount", "must be greater than zero"})
	}
	if strings.TrimSpace(tx.Description) == "" {
		fields = append(fields, FieldError{"description", "must not be empty"})
	}
	if tx.Date.IsZero() {
		fields = append(fields, FieldError{"date", "must be present"})
	}
	if strings.TrimSpace(tx.Category) == "" {
		fields = append(fields, FieldError{"category", "must not be empty"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
