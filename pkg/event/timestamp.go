package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp wraps time.Time with an ISO-8601 JSON codec so seed records
// and exports share one wire form.
type Timestamp struct {
	time.Time
}

var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime accepts RFC3339 timestamps plus the shortened forms seed
// fixtures tend to use.
func ParseTime(v string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("event: cannot parse timestamp %q", v)
}

// SameDay reports whether the timestamp falls on the same local calendar
// date as then.
func (t Timestamp) SameDay(then time.Time) bool {
	tl, ol := t.Local(), then.Local()
	return tl.Day() == ol.Day() && tl.Month() == ol.Month() && tl.Year() == ol.Year()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(raw)
	return err
}

func (t Timestamp) String() string {
	return t.Local().Format(time.RFC3339)
}
