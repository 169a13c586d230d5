package ics

import (
	"bytes"
	"fmt"
	"time"

	"sheetcal/app/calendar"
)

const (
	dateLayout     = "20060102"
	dateTimeLayout = "20060102T150405"
	utcStampLayout = "20060102T150405Z"
)

// Calendar carries the document-level metadata for one rendered feed.
type Calendar struct {
	Name            string        // X-WR-CALNAME display name
	ProdID          string        // PRODID product identifier
	TimezoneID      string        // TZID applied to timed events
	RefreshInterval time.Duration // refresh hint; zero omits the hint
}

// Renderer serializes feeds into RFC 5545 documents: CRLF line terminators,
// 75-octet folding, TEXT escaping at write time. Output is deterministic for
// identical input except for DTSTAMP, which is taken from Now once per run
// and shared by every event in the document.
type Renderer struct {
	Now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

func (r *Renderer) Run(cal Calendar, events []calendar.Event) (string, error) {
	var buf bytes.Buffer
	w := newWriter(&buf)

	stamp := r.Now().UTC().Truncate(time.Second).Format(utcStampLayout)

	w.line("BEGIN:VCALENDAR")
	w.prop("VERSION", "2.0")
	w.prop("PRODID", cal.ProdID)
	w.prop("CALSCALE", "GREGORIAN")
	w.prop("METHOD", "PUBLISH")
	w.textProp("X-WR-CALNAME", cal.Name)
	if cal.TimezoneID != "" {
		w.prop("X-WR-TIMEZONE", cal.TimezoneID)
	}
	if cal.RefreshInterval > 0 {
		hint := icsDuration(cal.RefreshInterval)
		w.prop("REFRESH-INTERVAL;VALUE=DURATION", hint)
		w.prop("X-PUBLISHED-TTL", hint)
	}

	for _, event := range events {
		r.writeEvent(w, cal, event, stamp)
	}

	w.line("END:VCALENDAR")

	return buf.String(), nil
}

func (r *Renderer) writeEvent(w *writer, cal Calendar, event calendar.Event, stamp string) {
	w.line("BEGIN:VEVENT")

	w.prop("UID", event.UID)
	w.prop("DTSTAMP", stamp)
	w.textProp("SUMMARY", event.Title)

	if event.Transparent {
		w.prop("TRANSP", "TRANSPARENT")
	} else {
		w.prop("TRANSP", "OPAQUE")
	}

	w.textProp("LOCATION", event.Location)
	w.textProp("DESCRIPTION", event.Description)
	if event.URL != "" {
		w.prop("URL;VALUE=URI", event.URL)
	}
	w.textProp("CATEGORIES", event.Category)

	if event.AllDay {
		// Date-only events use the exclusive-end convention: DTEND is the
		// day after the last day of the event.
		w.prop("DTSTART;VALUE=DATE", event.Start.Date.Format(dateLayout))
		w.prop("DTEND;VALUE=DATE", event.End.Date.AddDate(0, 0, 1).Format(dateLayout))
	} else {
		w.prop("DTSTART;TZID="+cal.TimezoneID, localStamp(event.Start))
		w.prop("DTEND;TZID="+cal.TimezoneID, localStamp(event.End))
	}

	w.line("END:VEVENT")
}

// localStamp formats a timed stamp as local wall-clock time in the
// document's timezone region. Seconds are always zero.
func localStamp(s calendar.Stamp) string {
	clock := s.Clock
	if clock == nil {
		clock = &calendar.Clock{}
	}
	t := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(),
		clock.Hour, clock.Minute, 0, 0, time.UTC)
	return t.Format(dateTimeLayout)
}

// icsDuration formats a duration as an RFC 5545 DURATION value.
func icsDuration(d time.Duration) string {
	seconds := int(d.Round(time.Second).Seconds())
	if seconds <= 0 {
		return "PT0S"
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	out := "PT"
	if h > 0 {
		out += fmt.Sprintf("%dH", h)
	}
	if m > 0 {
		out += fmt.Sprintf("%dM", m)
	}
	if s > 0 || (h == 0 && m == 0) {
		out += fmt.Sprintf("%dS", s)
	}
	return out
}
