package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"scheduling-assistant/internal/chat"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

// processSelection interprets the inbound message as a pick against the
// pending disambiguation options instead of new scheduling content.
func (uc *implUseCase) processSelection(ctx context.Context, sc *model.SessionContext, input chat.ProcessInput) (chat.ProcessOutput, error) {
	attendee := sc.Pending.Attendee
	options := sc.Pending.Options

	// Snapshot filled slots so resolving the selection cannot clobber
	// values pinned before the disambiguation detour.
	snapshot := make(map[string][]string)
	for _, slot := range requiredSlots {
		if values := sc.Slots[slot]; len(values) > 0 {
			snapshot[slot] = append([]string(nil), values...)
		}
	}

	selected := parseSelections(input.Message, options)
	if len(selected) == 0 {
		return chat.ProcessOutput{
			Response: fmt.Sprintf(msgInvalidSelection, formatContactOptions(options)),
			Entities: extractor.Entities{},
			Complete: sc.Complete,
		}, nil
	}

	displays := make([]string, 0, len(selected))
	for _, contact := range selected {
		display := contact.Display()
		appendAttendee(sc, display)
		sc.AttendeeEmails[display] = contact.Email
		displays = append(displays, display)
	}
	removeAttendee(sc, attendee)

	sc.Pending = nil
	sc.Mode = model.ModeNormal

	for slot, values := range snapshot {
		if slot == extractor.EntityAttendee {
			continue
		}
		if len(sc.Slots[slot]) == 0 {
			sc.Slots[slot] = values
		}
	}

	selectionText := strings.Join(displays, ", ")

	// Another name may still need disambiguation; chain straight into it.
	if name, nextOptions, ok := uc.findAmbiguousAttendee(ctx, *sc); ok {
		sc.Pending = &model.PendingSelection{Attendee: name, Options: nextOptions}
		sc.Mode = model.ModeAwaitingSelection
		uc.saveContext(ctx, input.SessionID, *sc)
		return chat.ProcessOutput{
			Response: fmt.Sprintf("Selected %s. ", selectionText) +
				fmt.Sprintf(msgMultipleContacts, name, formatContactOptions(nextOptions)),
			Entities: extractor.Entities{},
			Complete: sc.Complete,
		}, nil
	}

	var response string
	if uc.refreshCompleteness(ctx, sc) {
		response = fmt.Sprintf("Selected %s. %s %s %s",
			selectionText, uc.pick(prompts[poolConfirmation]), uc.pick(prompts[poolSummary]), sc.Summary)
		response += uc.scheduleSuffix(ctx, input.SessionID, sc)
	} else {
		response = fmt.Sprintf("Selected %s. ", selectionText) + uc.missingSlotPrompt(*sc)
	}

	uc.saveContext(ctx, input.SessionID, *sc)
	return chat.ProcessOutput{Response: response, Entities: extractor.Entities{}, Complete: sc.Complete}, nil
}

// parseSelections resolves a selection reply against the 1-indexed options:
// "both"/"all"/"everyone" pick everything, "and"/"&"/comma lists pick several,
// otherwise the whole message is a single index. Invalid tokens are dropped.
func parseSelections(message string, options []model.Contact) []model.Contact {
	lower := strings.ToLower(message)
	for _, keyword := range []string{"both", "all", "everyone"} {
		if strings.Contains(lower, keyword) {
			return options
		}
	}

	if strings.Contains(message, "and") || strings.Contains(message, "&") || strings.Contains(message, ",") {
		normalized := strings.ReplaceAll(message, " and ", ",")
		normalized = strings.ReplaceAll(normalized, "&", ",")

		var selected []model.Contact
		for _, part := range strings.Split(normalized, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			if n >= 1 && n <= len(options) {
				selected = append(selected, options[n-1])
			}
		}
		return selected
	}

	n, err := strconv.Atoi(strings.TrimSpace(message))
	if err == nil && n >= 1 && n <= len(options) {
		return []model.Contact{options[n-1]}
	}
	return nil
}
