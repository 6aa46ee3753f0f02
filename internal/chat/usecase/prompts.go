package usecase

import (
	"regexp"

	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

const (
	poolGreeting      = "GREETING"
	poolConfirmation  = "CONFIRMATION"
	poolSummary       = "SUMMARY"
	poolClarification = "CLARIFICATION"
	poolUnknown       = "UNKNOWN"
	poolHelp          = "HELP"
)

// prompts holds the canned response pools, keyed by slot name or special
// pool. Responses are picked via the injectable rand source.
var prompts = map[string][]string{
	extractor.EntityDate: {
		"What day would you like to schedule this for?",
		"Could you tell me the date for this?",
		"I need to know when this should happen. Today, tomorrow, or a specific day?",
	},
	extractor.EntityTime: {
		"What time would work best?",
		"Could you specify a time for this?",
		"When during the day should this take place?",
	},
	extractor.EntityDuration: {
		"How long will this take?",
		"What's the expected duration?",
		"How many minutes or hours should I reserve for this?",
	},
	extractor.EntityAttendee: {
		"Who will be attending?",
		"Could you mention who needs to be included?",
		"Who should I add to this event?",
	},
	poolGreeting: {
		"Hello! I'm your scheduling assistant. How can I help you today?",
		"Hi there! I can help you schedule something. What would you like to plan?",
		"Welcome! I'm here to help with your scheduling needs. What can I do for you?",
	},
	poolConfirmation: {
		"Great! I've got all the details I need.",
		"Perfect! I've collected all the necessary information.",
		"Thank you for providing all the details!",
	},
	poolSummary: {
		"Here's what I have: ",
		"Let me summarize what we've planned: ",
		"Here's the summary of your event: ",
	},
	poolClarification: {
		"I'm not sure I understood that correctly. Could you please clarify?",
		"I didn't quite catch that. Can you rephrase?",
		"Sorry, I'm having trouble understanding. Could you explain differently?",
	},
	poolUnknown: {
		"I'm not sure how to process that. Can you try phrasing it differently?",
		"I didn't understand that. Could you provide more details about what you're trying to schedule?",
		"I'm having trouble understanding. Let's try another approach. What are you trying to schedule?",
	},
	poolHelp: {
		"I'm your scheduling assistant. You can schedule meetings by telling me the date, time, duration, and attendees. For example, 'Schedule a meeting tomorrow at 3pm for 1 hour with John and Mary.' I'll ask for any missing information.",
		"To schedule something, just tell me when it should happen, for how long, and with whom. I'll guide you through the process by asking for any details you haven't provided.",
		"I can help you schedule events! Just mention the date (like 'tomorrow' or 'next Monday'), time (like '3pm'), duration (like '30 minutes'), and who's attending. I'll ask you for any information you haven't provided.",
	},
}

const (
	msgMultipleContacts = "Multiple contacts found for '%s'. Please select one or more by number (e.g., '1', '2', '1 and 2', or 'all'):\n%s"
	msgInvalidSelection = "Invalid selection. Please select one or more numbers from the list (e.g., '1', '2', '1 and 2', or 'all'):\n%s"

	msgNotFoundSingle   = "%s is not in the organization's contact list. Please choose someone from the organization."
	msgNotFoundMultiple = "The following people are not in the organization's contact list: %s. Please choose attendees from the organization."

	msgCalendarLink        = "\n\nYou can join the meeting using this calendar link: %s"
	msgCalendarAuthFailed  = " Note: I couldn't add this to your calendar because the calendar connection has expired. Please reconnect your calendar account."
	msgCalendarCreateError = " Note: I couldn't add this to your calendar due to a technical issue. Please try again later."
)

var greetingRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhi\b`),
	regexp.MustCompile(`(?i)\bhello\b`),
	regexp.MustCompile(`(?i)\bhey\b`),
	regexp.MustCompile(`(?i)\bgreetings\b`),
	regexp.MustCompile(`(?i)\bgood\s*(?:morning|afternoon|evening)\b`),
	regexp.MustCompile(`(?i)\bwhat'?s?\s*up\b`),
	regexp.MustCompile(`(?i)\bhowdy\b`),
}

var helpRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhow\s+(?:do|can|should)\s+I\b`),
	regexp.MustCompile(`(?i)\bhelp\b`),
	regexp.MustCompile(`(?i)\bguide\b`),
	regexp.MustCompile(`(?i)\bhow\s+(?:does|to)\b`),
	regexp.MustCompile(`(?i)\bwhat\s+(?:can|should)\b`),
	regexp.MustCompile(`(?i)\binstruction`),
	regexp.MustCompile(`(?i)\bexplain\b`),
}

// pick chooses a random entry from a pool.
func (uc *implUseCase) pick(pool []string) string {
	return pool[uc.rand(len(pool))]
}

// specialIntent returns a canned greeting or help response, or "" when the
// message carries neither intent.
func (uc *implUseCase) specialIntent(message string) string {
	for _, re := range greetingRegexes {
		if re.MatchString(message) {
			return uc.pick(prompts[poolGreeting])
		}
	}
	for _, re := range helpRegexes {
		if re.MatchString(message) {
			return uc.pick(prompts[poolHelp])
		}
	}
	return ""
}

// missingSlotPrompt asks for the first unfilled required slot, or confirms
// when nothing is missing.
func (uc *implUseCase) missingSlotPrompt(sc model.SessionContext) string {
	for _, slot := range requiredSlots {
		if len(sc.Slots[slot]) == 0 {
			return uc.pick(prompts[slot])
		}
	}
	return uc.pick(prompts[poolConfirmation])
}
