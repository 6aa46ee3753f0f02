package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	dayMonthRe = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+)$`)
	monthDayRe = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?$`)
)

// ParseDayMonth handles explicit day-of-month phrases like "26th july",
// "july 26" or "26 jul", resolved into the base time's year.
func (p *Parser) ParseDayMonth(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	var dayStr, monthStr string
	if m := dayMonthRe.FindStringSubmatch(phrase); m != nil {
		dayStr, monthStr = m[1], m[2]
	} else if m := monthDayRe.FindStringSubmatch(phrase); m != nil {
		monthStr, dayStr = m[1], m[2]
	} else {
		return baseTime, fmt.Errorf("not a day-month phrase: %q", phrase)
	}

	month, ok := monthsByName[monthStr]
	if !ok {
		return baseTime, fmt.Errorf("unknown month: %q", monthStr)
	}

	day, _ := strconv.Atoi(dayStr)
	t := time.Date(baseTime.In(p.location).Year(), month, day, 0, 0, 0, 0, p.location)
	// time.Date normalizes overflow (Apr 31 -> May 1); reject those.
	if t.Day() != day || t.Month() != month {
		return baseTime, fmt.Errorf("invalid day of month: %q", phrase)
	}

	return t, nil
}

// Resolve converts any supported date phrase (relative or explicit
// day-of-month) to a calendar day. It reports ok=false when the phrase
// cannot be resolved, leaving the caller free to keep the raw text.
func (p *Parser) Resolve(phrase string, baseTime time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(phrase))

	switch lower {
	case "today", "tomorrow", "yesterday":
		t, err := p.Parse(lower, baseTime)
		return t, err == nil
	}

	if strings.HasPrefix(lower, "next ") || strings.HasPrefix(lower, "in ") {
		t, err := p.Parse(lower, baseTime)
		return t, err == nil
	}

	t, err := p.ParseDayMonth(lower, baseTime)
	return t, err == nil
}
