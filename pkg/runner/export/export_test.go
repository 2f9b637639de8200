package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"almanac/pkg/app"
	"almanac/pkg/event"
	"almanac/pkg/store"
)

func TestExportWritesVEvents(t *testing.T) {
	ctx := context.Background()
	svc := &app.Service{Store: store.NewStore()}

	start := time.Date(2025, time.May, 5, 9, 0, 0, 0, time.UTC)
	if _, err := svc.Add(ctx, event.Draft{
		Title:       "Team sync",
		Description: "Weekly",
		Start:       start,
		End:         start.Add(30 * time.Minute),
		Category:    "work",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	var buf bytes.Buffer
	n := &Export{Out: &buf, Service: svc}
	if err := n.Do(ctx); err != nil {
		t.Fatalf("export: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"SUMMARY:Team sync",
		"CATEGORIES:work",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
