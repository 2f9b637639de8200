package event

import (
	"testing"
	"time"
)

func TestValidateEmptyDraft(t *testing.T) {
	errs := Validate(Draft{})
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}

	want := []FieldError{
		{Field: FieldTitle, Message: "Title is required"},
		{Field: FieldStart, Message: "Start date is required"},
		{Field: FieldEnd, Message: "End date is required"},
	}
	for i, fe := range want {
		if errs[i] != fe {
			t.Fatalf("error %d: expected %v, got %v", i, fe, errs[i])
		}
	}
}

func TestValidateEqualTimestamps(t *testing.T) {
	at := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.Local)
	errs := Validate(Draft{Title: "A", Start: at, End: at})
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Message != "End date must be after start date" {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
	if errs[0].Field != FieldEnd {
		t.Fatalf("expected error on %q, got %q", FieldEnd, errs[0].Field)
	}
}

func TestValidateBlankTitle(t *testing.T) {
	at := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.Local)
	errs := Validate(Draft{Title: "   ", Start: at, End: at.Add(time.Hour)})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != FieldTitle {
		t.Fatalf("expected title error, got %v", errs[0])
	}
}

func TestValidateNoRangeCheckWhenEndMissing(t *testing.T) {
	at := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.Local)
	errs := Validate(Draft{Title: "A", Start: at})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Message != "End date is required" {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
}

func TestValidateOK(t *testing.T) {
	at := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.Local)
	errs := Validate(Draft{Title: "Standup", Start: at, End: at.Add(30 * time.Minute)})
	if len(errs) != 0 {
		t.Fatalf("expected valid draft, got %v", errs)
	}
}

func TestValidationErrorFields(t *testing.T) {
	ve := &ValidationError{Errors: Validate(Draft{})}
	fields := ve.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %v", fields)
	}
	if fields[FieldStart] != "Start date is required" {
		t.Fatalf("unexpected start message %q", fields[FieldStart])
	}
	msgs := ve.Messages()
	if len(msgs) != 3 || msgs[0] != "Title is required" {
		t.Fatalf("unexpected ordered messages %v", msgs)
	}
}
