package extractor

import (
	"context"
	"regexp"
	"strings"
	"time"

	"scheduling-assistant/pkg/datemath"
	"scheduling-assistant/pkg/log"
	"scheduling-assistant/pkg/response"
)

// Entity type keys returned by Extract.
const (
	EntityDate     = "DATE"
	EntityTime     = "TIME"
	EntityDuration = "DURATION"
	EntityAttendee = "ATTENDEE"
)

// Entities maps an entity type to its ordered candidate values.
type Entities map[string][]string

var (
	timeRegex = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b|\b\d{1,2}\s*(?:am|pm)\b|\b(?:[01]?\d|2[0-3]):[0-5]\d\b|\b(?:[01]?\d|2[0-3])[0-5]\d\b`)

	durationRegex = regexp.MustCompile(`(?i)\b(\d+)\s*(?:minute|min|mins)\b|\b(\d+)\s*(?:hour|hr|hours)\b|\bfor\s+(\d+)\s*(?:minute|min|mins)\b|\bfor\s+(\d+)\s*(?:hour|hr|hours)\b|\b(\d+)(?:m|min)\b|\b(\d+)(?:h|hr)\b`)

	durationFallbackRegex = regexp.MustCompile(`(?i)\b(\d+)\s*(?:mins?|minutes|hours?|hrs?)\b`)

	hourAdjacentRegex   = regexp.MustCompile(`(?i)(\d+)\s*(?:hour|hr|hours|h)\b`)
	minuteAdjacentRegex = regexp.MustCompile(`(?i)(\d+)\s*(?:minute|min|mins|m)\b`)

	dateRegex = regexp.MustCompile(`(?i)\b(?:today|tomorrow|yesterday)\b|\bnext\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b|\b\d{1,2}(?:st|nd|rd|th)?\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)\b|\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?\b|\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b|\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{1,2}(?:st|nd|rd|th)?\b`)
)

// Extractor pulls DATE/TIME/DURATION/ATTENDEE candidates out of free text.
// It is stateless; relative dates resolve against the injected clock.
type Extractor struct {
	l     log.Logger
	dates *datemath.Parser
	now   func() time.Time
}

// New creates an Extractor. now may be nil, defaulting to time.Now.
func New(l log.Logger, dates *datemath.Parser, now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{l: l, dates: dates, now: now}
}

// Extract runs all extraction passes against the current clock. It never
// returns an error: an internal fault yields empty candidate sets.
func (e *Extractor) Extract(text string) Entities {
	return e.ExtractAt(text, e.now())
}

// ExtractAt is Extract with an explicit reference time for relative dates.
func (e *Extractor) ExtractAt(text string, base time.Time) (entities Entities) {
	entities = Entities{
		EntityDate:     {},
		EntityTime:     {},
		EntityDuration: {},
		EntityAttendee: {},
	}

	defer func() {
		if r := recover(); r != nil {
			e.l.Errorf(context.Background(), "extractor: recovered from panic: %v", r)
			entities = Entities{
				EntityDate:     {},
				EntityTime:     {},
				EntityDuration: {},
				EntityAttendee: {},
			}
		}
	}()

	// Times first so a bare "3pm" reply is never treated as a name.
	entities[EntityTime] = timeRegex.FindAllString(text, -1)

	entities[EntityDuration] = e.extractDurations(text)

	entities[EntityDate] = e.extractDates(text, base)

	// A one- or two-word message that already matched is a slot answer,
	// not an introduction of attendees.
	words := strings.Fields(strings.TrimSpace(text))
	if (len(words) == 1 && (len(entities[EntityTime]) > 0 || len(entities[EntityDuration]) > 0)) ||
		(len(words) <= 2 && (len(entities[EntityTime]) > 0 || len(entities[EntityDuration]) > 0 || len(entities[EntityDate]) > 0)) {
		return entities
	}

	entities[EntityAttendee] = e.extractAttendees(text)

	return entities
}

// extractDurations finds numeric durations and normalizes each to
// "<N> mins" or "<N> hours". Unit classification prefers a keyword adjacent
// to the matched number in the original text, then any minute keyword, then
// falls back to whether the text mentions hours at all.
func (e *Extractor) extractDurations(text string) []string {
	lower := strings.ToLower(text)

	var durations []string
	for _, match := range durationRegex.FindAllStringSubmatch(text, -1) {
		number := firstGroup(match)
		if number == "" {
			continue
		}
		durations = append(durations, classifyDuration(number, text, lower))
	}

	if len(durations) > 0 {
		return durations
	}

	for _, match := range durationFallbackRegex.FindAllStringSubmatch(text, -1) {
		if strings.Contains(lower, "hour") || strings.Contains(lower, "hrs") {
			durations = append(durations, match[1]+" hours")
		} else {
			durations = append(durations, match[1]+" mins")
		}
	}

	return durations
}

func classifyDuration(number, text, lower string) string {
	if m := hourAdjacentRegex.FindStringSubmatch(text); m != nil && m[1] == number {
		return number + " hours"
	}
	if minuteAdjacentRegex.MatchString(text) {
		return number + " mins"
	}
	if strings.Contains(lower, "hour") || strings.Contains(lower, "hr") {
		return number + " hours"
	}
	return number + " mins"
}

// extractDates resolves each raw date phrase to YYYY-MM-DD where possible;
// an unresolvable phrase (e.g. "31st April") is kept verbatim.
func (e *Extractor) extractDates(text string, base time.Time) []string {
	var dates []string
	for _, raw := range dateRegex.FindAllString(text, -1) {
		if resolved, ok := e.dates.Resolve(raw, base); ok {
			dates = append(dates, resolved.Format(response.DateFormat))
		} else {
			dates = append(dates, raw)
		}
	}
	return dates
}

func firstGroup(match []string) string {
	for _, g := range match[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
