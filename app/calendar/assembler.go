package calendar

import (
	"sheetcal/app/source"
)

// Stats counts the outcome of one assembly pass. Dropped rows are expected
// with spreadsheet input and never abort the batch; the counts exist for
// observability.
type Stats struct {
	Total          int `json:"total"`
	Built          int `json:"built"`
	DroppedNoTitle int `json:"dropped_no_title"`
	DroppedBadDate int `json:"dropped_bad_date"`
	DroppedBadTime int `json:"dropped_bad_time"`
}

func (s *Stats) Dropped() int {
	return s.DroppedNoTitle + s.DroppedBadDate + s.DroppedBadTime
}

type dropReason int

const (
	dropNone dropReason = iota
	dropNoTitle
	dropBadStartDate
	dropUnresolved
)

// Assembler turns raw rows into canonical events. feedName participates in
// UID synthesis so distinct calendars built from identical sheets do not
// collide; uidDomain is the suffix after the "@".
type Assembler struct {
	feedName  string
	uidDomain string
}

func NewAssembler(feedName, uidDomain string) *Assembler {
	return &Assembler{feedName: feedName, uidDomain: uidDomain}
}

// Run assembles every valid row into an event, preserving input order.
// Invalid rows are counted and skipped, never surfaced as errors.
func (a *Assembler) Run(rows []source.Row) ([]Event, *Stats) {
	stats := &Stats{}
	events := make([]Event, 0, len(rows))

	for _, row := range rows {
		stats.Total++

		event, reason := a.build(row)
		switch reason {
		case dropNoTitle:
			stats.DroppedNoTitle++
		case dropBadStartDate:
			stats.DroppedBadDate++
		case dropUnresolved:
			stats.DroppedBadTime++
		default:
			events = append(events, event)
			stats.Built++
		}
	}

	return events, stats
}

func (a *Assembler) build(row source.Row) (Event, dropReason) {
	title := CleanText(row.Get(source.FieldTitle))
	if title == "" {
		return Event{}, dropNoTitle
	}

	startDate, ok := ParseDate(row.Get(source.FieldStartDate))
	if !ok {
		return Event{}, dropBadStartDate
	}

	startClock, hasStartClock := ParseClock(row.Get(source.FieldStartTime))
	endClock, hasEndClock := ParseClock(row.Get(source.FieldEndTime))

	endDate, hasEndDate := ParseDate(row.Get(source.FieldEndDate))
	if !hasEndDate {
		endDate = startDate
	}

	event := Event{
		Title:       title,
		AllDay:      !hasStartClock && !hasEndClock,
		Location:    CleanText(row.Get(source.FieldLocation)),
		Description: CleanText(row.Get(source.FieldDescription)),
		URL:         CleanText(row.Get(source.FieldURL)),
		Transparent: ParseBool(row.Get(source.FieldTransparency)),
	}

	event.Category = CleanText(row.Get(source.FieldCategory))
	if event.Category == "" {
		event.Category = DefaultCategory
	}

	if event.AllDay {
		// Exclusive-end expansion happens at render time, so a single-day
		// event keeps end == start here.
		event.Start = Stamp{Date: startDate}
		event.End = Stamp{Date: endDate}
	} else {
		start := startClock
		if !hasStartClock {
			start = Clock{} // midnight
		}
		end := endClock
		if !hasEndClock {
			end = start
		}
		event.Start = Stamp{Date: startDate, Clock: &start}
		event.End = Stamp{Date: endDate, Clock: &end}
	}

	if event.Start.Date.IsZero() || event.End.Date.IsZero() {
		return Event{}, dropUnresolved
	}

	event.UID = CleanText(row.Get(source.FieldUID))
	if event.UID == "" {
		event.UID = SynthesizeUID(
			title,
			row.Get(source.FieldStartDate),
			row.Get(source.FieldEndDate),
			row.Get(source.FieldStartTime),
			row.Get(source.FieldEndTime),
			event.Location,
			a.feedName,
			a.uidDomain,
		)
	}

	return event, dropNone
}
