package extractor

import (
	"regexp"
	"strings"
)

// commandWords are stripped before attendee extraction so "schedule with
// John" reduces to "John".
var commandWords = []string{"add", "schedule", "plan", "create", "set", "arrange", "invite", "with", "meeting"}

var (
	queryWords  = []string{"how", "what", "when", "where", "why", "who", "which", "schedule", "help", "can"}
	commonWords = []string{
		"i", "me", "my", "mine", "you", "your", "he", "she", "his", "her",
		"schedule", "meeting", "appointment", "tomorrow", "today",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
	}
)

var (
	commandWordRegexes = buildCommandWordRegexes()
	whitespaceRegex    = regexp.MustCompile(`\s+`)

	// Proper-case "Word" or "Word Word" names.
	properNameRegex = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`)
	// Loose variant accepting any casing; last-ditch heuristic only.
	looseNameRegex = regexp.MustCompile(`(?i)\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`)

	attendeeStoplist = buildStoplist()
)

func buildCommandWordRegexes() []*regexp.Regexp {
	regexes := make([]*regexp.Regexp, len(commandWords))
	for i, word := range commandWords {
		regexes[i] = regexp.MustCompile(`(?i)\b` + word + `\b`)
	}
	return regexes
}

func buildStoplist() map[string]struct{} {
	stop := make(map[string]struct{})
	for _, w := range queryWords {
		stop[w] = struct{}{}
	}
	for _, w := range commonWords {
		stop[w] = struct{}{}
	}
	for _, w := range commandWords {
		stop[w] = struct{}{}
	}
	return stop
}

// extractAttendees tries a fixed chain of strategies; the first one that
// produces candidates wins. Results are stoplist-filtered and deduplicated
// preserving first-seen order.
func (e *Extractor) extractAttendees(text string) []string {
	preprocessed := stripCommandWords(text)

	strategies := []func() []string{
		func() []string { return splitOnSeparators(preprocessed) },
		func() []string { return recognizeNames(preprocessed) },
		func() []string { return recognizeNames(text) },
		func() []string { return looseNames(preprocessed) },
		func() []string { return looseNames(text) },
		func() []string { return wordTokens(preprocessed) },
	}

	var attendees []string
	for _, strategy := range strategies {
		if attendees = strategy(); len(attendees) > 0 {
			break
		}
	}

	var unique []string
	seen := make(map[string]struct{})
	for _, name := range attendees {
		if _, stopped := attendeeStoplist[strings.ToLower(name)]; stopped {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

func stripCommandWords(text string) string {
	for _, re := range commandWordRegexes {
		text = re.ReplaceAllString(text, " ")
	}
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// splitOnSeparators handles "Alice, Bob and Carol" style listings. It only
// applies when a separator is actually present.
func splitOnSeparators(text string) []string {
	if !strings.Contains(text, ",") && !strings.Contains(text, " and ") && !strings.Contains(text, "&") {
		return nil
	}

	normalized := strings.ReplaceAll(text, " and ", ",")
	normalized = strings.ReplaceAll(normalized, "&", ",")

	var names []string
	for _, part := range strings.Split(normalized, ",") {
		if part = strings.TrimSpace(part); len(part) > 1 {
			names = append(names, part)
		}
	}
	return names
}

func recognizeNames(text string) []string {
	return properNameRegex.FindAllString(text, -1)
}

func looseNames(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return looseNameRegex.FindAllString(text, -1)
}

func wordTokens(text string) []string {
	var tokens []string
	for _, w := range strings.Fields(text) {
		if w = strings.TrimSpace(w); len(w) > 1 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
