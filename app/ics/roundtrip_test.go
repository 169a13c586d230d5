package ics

import (
	"strings"
	"testing"
	"time"

	goical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetcal/app/calendar"
)

// Rendered documents must survive a third-party RFC 5545 parser: folding,
// escaping, and property layout all have to line up for strict clients.
func TestRenderedDocumentParses(t *testing.T) {
	nine := calendar.Clock{Hour: 9, Minute: 0}
	events := []calendar.Event{
		{
			UID:         "first@sheetcal",
			Title:       "Exams, part 1; bring ID",
			AllDay:      true,
			Category:    "Exams",
			Description: strings.Repeat("A long description that will certainly need folding. ", 5),
			Start:       calendar.Stamp{Date: date(2025, 3, 10)},
			End:         calendar.Stamp{Date: date(2025, 3, 10)},
		},
		{
			UID:      "second@sheetcal",
			Title:    "Lecture",
			Category: "Lectures",
			Location: "Main Hall, Building 3",
			Start:    calendar.Stamp{Date: date(2025, 3, 11), Clock: &nine},
			End:      calendar.Stamp{Date: date(2025, 3, 11), Clock: &nine},
		},
	}

	body, err := testRenderer().Run(testCalendar(), events)
	require.NoError(t, err)

	parsed, err := goical.ParseCalendar(strings.NewReader(body))
	require.NoError(t, err, "third-party parser rejected the document")

	parsedEvents := parsed.Events()
	require.Len(t, parsedEvents, 2)

	first := parsedEvents[0]
	assert.Equal(t, "first@sheetcal", first.GetProperty(goical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "20250310", first.GetProperty(goical.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20250311", first.GetProperty(goical.ComponentPropertyDtEnd).Value)

	second := parsedEvents[1]
	assert.Equal(t, "second@sheetcal", second.GetProperty(goical.ComponentPropertyUniqueId).Value)
	assert.Equal(t, "20250311T090000", second.GetProperty(goical.ComponentPropertyDtStart).Value)

	stampProp := first.GetProperty("DTSTAMP")
	require.NotNil(t, stampProp)
	stamp, err := time.Parse("20060102T150405Z", stampProp.Value)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC), stamp)
}
