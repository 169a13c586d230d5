package calendar

import (
	"time"
)

// Calendar transformation types

// Clock is a time of day at minute precision. Input seconds are truncated.
type Clock struct {
	Hour   int
	Minute int
}

// Stamp is a resolved point on the calendar. Date is always set (normalized
// to midnight UTC, date component only); Clock is nil for date-only stamps.
// Absence of a whole Stamp is expressed by the (value, ok) pair returned
// from the normalizers, never by a zero value.
type Stamp struct {
	Date  time.Time
	Clock *Clock
}

// Event is the canonical unit of output, constructed once per valid row and
// immutable thereafter. The same value appears in its category feed and in
// the combined feed.
type Event struct {
	UID         string
	Title       string
	Start       Stamp
	End         Stamp
	AllDay      bool
	Location    string
	Description string
	URL         string
	Category    string
	Transparent bool
}

// Feed is a named, ordered sequence of events sharing a category, or the
// union of all rows for the combined feed. Feeds are rebuilt from scratch on
// every run.
type Feed struct {
	Name     string
	Slug     string
	Combined bool
	Events   []Event
}

// DefaultCategory is substituted for rows whose category is absent or blank.
const DefaultCategory = "General"
