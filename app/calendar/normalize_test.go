package calendar

import (
	"testing"
	"time"
)

func TestParseDateISO(t *testing.T) {
	d, ok := ParseDate("2025-03-10")
	if !ok {
		t.Fatal("Expected ISO date to parse")
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 10 {
		t.Errorf("Expected 2025-03-10, got: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("Expected date-only value, got: %v", d)
	}
}

func TestParseDateDayFirstPriority(t *testing.T) {
	// 03/04/2025 is ambiguous; the day-first layout is tried before the
	// month-first one, so this must resolve to April 3rd.
	d, ok := ParseDate("03/04/2025")
	if !ok {
		t.Fatal("Expected slash date to parse")
	}
	if d.Month() != time.April || d.Day() != 3 {
		t.Errorf("Expected April 3 (day-first), got: %v", d)
	}
}

func TestParseDateMonthFirst(t *testing.T) {
	// Day 13+ cannot be a month, so the day-first layout fails and the
	// month-first layout picks it up.
	d, ok := ParseDate("03/14/2025")
	if !ok {
		t.Fatal("Expected month-first date to parse")
	}
	if d.Month() != time.March || d.Day() != 14 {
		t.Errorf("Expected March 14, got: %v", d)
	}
}

func TestParseDateGenericFallback(t *testing.T) {
	d, ok := ParseDate("2025-03-10T14:30:00Z")
	if !ok {
		t.Fatal("Expected ISO-8601 datetime to parse")
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 10 {
		t.Errorf("Expected 2025-03-10, got: %v", d)
	}
	if d.Hour() != 0 {
		t.Errorf("Expected time component stripped, got hour: %d", d.Hour())
	}
}

func TestParseDateAbsent(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-date"} {
		if _, ok := ParseDate(raw); ok {
			t.Errorf("Expected %q to be absent", raw)
		}
	}
}

func TestParseClock(t *testing.T) {
	c, ok := ParseClock("09:30")
	if !ok {
		t.Fatal("Expected HH:MM to parse")
	}
	if c.Hour != 9 || c.Minute != 30 {
		t.Errorf("Expected 09:30, got: %02d:%02d", c.Hour, c.Minute)
	}
}

func TestParseClockTruncatesSeconds(t *testing.T) {
	c, ok := ParseClock("09:30:45")
	if !ok {
		t.Fatal("Expected HH:MM:SS to parse")
	}
	if c.Hour != 9 || c.Minute != 30 {
		t.Errorf("Expected truncation to 09:30, got: %02d:%02d", c.Hour, c.Minute)
	}
}

func TestParseClockFromDatetime(t *testing.T) {
	c, ok := ParseClock("2025-03-10 14:15:59")
	if !ok {
		t.Fatal("Expected datetime-shaped time cell to parse")
	}
	if c.Hour != 14 || c.Minute != 15 {
		t.Errorf("Expected 14:15, got: %02d:%02d", c.Hour, c.Minute)
	}
}

func TestParseClockAbsent(t *testing.T) {
	for _, raw := range []string{"", "  ", "not-a-time"} {
		if _, ok := ParseClock(raw); ok {
			t.Errorf("Expected %q to be absent", raw)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", "yes", "Y", "1", "Transparent", "free"} {
		if !ParseBool(raw) {
			t.Errorf("Expected %q to be true", raw)
		}
	}
	for _, raw := range []string{"", "false", "no", "0", "busy", "maybe"} {
		if ParseBool(raw) {
			t.Errorf("Expected %q to be false", raw)
		}
	}
}

func TestCleanText(t *testing.T) {
	cases := map[string]string{
		"  hello  ": "hello",
		"":          "",
		"   ":       "",
		"nan":       "",
		"NaN":       "",
		"NULL":      "",
		"None":      "",
		"nancy":     "nancy",
	}
	for raw, expected := range cases {
		if got := CleanText(raw); got != expected {
			t.Errorf("CleanText(%q): expected %q, got: %q", raw, expected, got)
		}
	}
}
