// Package event defines the calendar event record and the pure query and
// validation helpers the views are built from.
package event

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is a titled interval with optional display metadata. The ID is
// opaque and immutable once assigned; every other field may be replaced
// wholesale on update.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       Timestamp `json:"start"`
	End         Timestamp `json:"end"`
	Color       string    `json:"color,omitempty"`
	Category    string    `json:"category,omitempty"`
}

// Draft carries the fields of an event that has not been admitted to the
// store yet. Zero timestamps mean the field is missing.
type Draft struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       string
	Category    string
}

// Draft returns the event's mutable fields for re-validation.
func (e *Event) Draft() Draft {
	return Draft{
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start.Time,
		End:         e.End.Time,
		Color:       e.Color,
		Category:    e.Category,
	}
}

// Event materializes the draft under the given id.
func (d Draft) Event(id string) *Event {
	return &Event{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Start:       Timestamp{Time: d.Start},
		End:         Timestamp{Time: d.End},
		Color:       d.Color,
		Category:    d.Category,
	}
}

// Duration returns the event's length.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start.Time)
}

func (e *Event) String() string {
	return e.Title
}

// NewID returns an opaque identifier unique per call.
func NewID() string {
	return uuid.NewString()
}
