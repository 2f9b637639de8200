package event

import "strings"

// Form field names referenced by validation results.
const (
	FieldTitle = "title"
	FieldStart = "start"
	FieldEnd   = "end"
)

// FieldError ties a validation message to the form field it belongs to,
// so callers route messages structurally instead of sniffing substrings.
type FieldError struct {
	Field   string
	Message string
}

// Validate checks a draft and returns every applicable error, in order:
// title, start, end, then the start/end ordering check (only when both
// ends are present). An empty result means the draft is valid.
func Validate(d Draft) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, FieldError{Field: FieldTitle, Message: "Title is required"})
	}
	if d.Start.IsZero() {
		errs = append(errs, FieldError{Field: FieldStart, Message: "Start date is required"})
	}
	if d.End.IsZero() {
		errs = append(errs, FieldError{Field: FieldEnd, Message: "End date is required"})
	}
	if !d.Start.IsZero() && !d.End.IsZero() && !d.Start.Before(d.End) {
		errs = append(errs, FieldError{Field: FieldEnd, Message: "End date must be after start date"})
	}

	return errs
}

// ValidationError carries the ordered field errors of a rejected mutation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), ", ")
}

// Messages returns the human-readable messages in validation order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return msgs
}

// Fields returns the first message per field, keyed by field name.
func (e *ValidationError) Fields() map[string]string {
	m := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := m[fe.Field]; !ok {
			m[fe.Field] = fe.Message
		}
	}
	return m
}
