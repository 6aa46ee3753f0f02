package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scheduling-assistant/internal/chat"
	"scheduling-assistant/internal/chat/repository"
	"scheduling-assistant/internal/meeting"
	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/extractor"
)

func (uc *implUseCase) Process(ctx context.Context, input chat.ProcessInput) (out chat.ProcessOutput, err error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	lock := uc.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	// A turn must never crash the caller: any internal fault becomes a
	// generic "didn't understand" response.
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chat.usecase.Process: recovered: %v", r)
			out = chat.ProcessOutput{
				Response: uc.pick(prompts[poolUnknown]),
				Entities: extractor.Entities{},
			}
			err = nil
		}
	}()

	sc := uc.loadContext(ctx, input.SessionID)

	if sc.Mode == model.ModeAwaitingSelection && sc.Pending != nil {
		return uc.processSelection(ctx, &sc, input)
	}
	return uc.processNormal(ctx, &sc, input)
}

// processNormal runs one normal-mode turn: extract, resolve attendees,
// merge, disambiguate, then prompt or summarize.
func (uc *implUseCase) processNormal(ctx context.Context, sc *model.SessionContext, input chat.ProcessInput) (chat.ProcessOutput, error) {
	entities := uc.extractor.Extract(input.Message)
	uc.l.Infof(ctx, "chat.usecase.Process: session %s entities %v", input.SessionID, entities)

	// Greetings and help requests short-circuit the turn, no merge happens.
	if special := uc.specialIntent(input.Message); special != "" {
		return chat.ProcessOutput{Response: special, Entities: extractor.Entities{}, Complete: sc.Complete}, nil
	}

	names := entities[extractor.EntityAttendee]
	if len(names) > 0 {
		// Phase one: classify every extracted name before touching context,
		// so a not-found name rejects the whole turn without partial state.
		var (
			notFound  []string
			unique    []model.Contact
			ambiguous []pendingCandidate
		)
		for _, name := range names {
			if isQualifiedAttendee(name) {
				continue
			}
			contacts, err := uc.contacts.FindByName(ctx, name)
			if err != nil {
				uc.l.Errorf(ctx, "chat.usecase.Process.FindByName: %v", err)
				return chat.ProcessOutput{
					Response: uc.pick(prompts[poolUnknown]),
					Entities: extractor.Entities{},
					Complete: sc.Complete,
				}, nil
			}
			switch len(contacts) {
			case 0:
				notFound = append(notFound, name)
			case 1:
				unique = append(unique, contacts[0])
			default:
				ambiguous = append(ambiguous, pendingCandidate{name: name, options: contacts})
			}
		}

		if len(notFound) > 0 {
			return chat.ProcessOutput{
				Response: notFoundResponse(notFound),
				Entities: extractor.Entities{},
				Complete: sc.Complete,
			}, nil
		}

		// Phase two: commit. Unique matches enter the slot in canonical
		// "Name (email)" form; ambiguous raw names stay out until selected.
		for _, contact := range unique {
			display := contact.Display()
			appendAttendee(sc, display)
			sc.AttendeeEmails[display] = contact.Email
		}
		mergeConditional(sc, entities)

		if len(ambiguous) > 0 {
			first := ambiguous[0]
			sc.Pending = &model.PendingSelection{Attendee: first.name, Options: first.options}
			sc.Mode = model.ModeAwaitingSelection
			uc.saveContext(ctx, input.SessionID, *sc)
			return chat.ProcessOutput{
				Response: fmt.Sprintf(msgMultipleContacts, first.name, formatContactOptions(first.options)),
				Entities: entities,
				Complete: sc.Complete,
			}, nil
		}
	}

	// Non-attendee slots merge last-write-wins; attendees were already
	// committed in canonical form above.
	mergeReplace(sc, entities)

	// Names that entered context in an earlier turn may still be ambiguous.
	if name, options, ok := uc.findAmbiguousAttendee(ctx, *sc); ok {
		sc.Pending = &model.PendingSelection{Attendee: name, Options: options}
		sc.Mode = model.ModeAwaitingSelection
		uc.saveContext(ctx, input.SessionID, *sc)
		return chat.ProcessOutput{
			Response: fmt.Sprintf(msgMultipleContacts, name, formatContactOptions(options)),
			Entities: entities,
			Complete: sc.Complete,
		}, nil
	}

	var response string
	if uc.refreshCompleteness(ctx, sc) {
		response = fmt.Sprintf("%s %s %s", uc.pick(prompts[poolConfirmation]), uc.pick(prompts[poolSummary]), sc.Summary)
		response += uc.scheduleSuffix(ctx, input.SessionID, sc)
	} else {
		response = uc.missingSlotPrompt(*sc)
	}

	uc.saveContext(ctx, input.SessionID, *sc)
	return chat.ProcessOutput{Response: response, Entities: entities, Complete: sc.Complete}, nil
}

type pendingCandidate struct {
	name    string
	options []model.Contact
}

func (uc *implUseCase) loadContext(ctx context.Context, sessionID string) model.SessionContext {
	sc, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrContextNotFound) {
			uc.l.Errorf(ctx, "chat.usecase.loadContext: %v", err)
		}
		return model.NewSessionContext(requiredSlots)
	}
	return sc
}

func (uc *implUseCase) saveContext(ctx context.Context, sessionID string, sc model.SessionContext) {
	if err := uc.repo.Save(ctx, sessionID, sc); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.saveContext: %v", err)
	}
}

// refreshCompleteness re-evaluates the complete flag and generates the
// summary once, on first completeness.
func (uc *implUseCase) refreshCompleteness(ctx context.Context, sc *model.SessionContext) bool {
	complete := true
	for _, slot := range requiredSlots {
		if len(sc.Slots[slot]) == 0 {
			complete = false
			break
		}
	}
	sc.Complete = complete
	if complete && sc.Summary == "" {
		sc.Summary = uc.generateSummary(ctx, sc)
	}
	return complete
}

// scheduleSuffix pushes a freshly complete context to the calendar
// collaborator and renders the outcome as a response suffix. Calendar
// failures never replace the already-computed response.
func (uc *implUseCase) scheduleSuffix(ctx context.Context, sessionID string, sc *model.SessionContext) string {
	if uc.scheduler == nil {
		return ""
	}
	link, err := uc.scheduler.Schedule(ctx, sessionID, *sc)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.scheduleSuffix: %v", err)
		if isAuthFailure(err) {
			return msgCalendarAuthFailed
		}
		if isNoCalendar(err) {
			return ""
		}
		return msgCalendarCreateError
	}
	if link == "" {
		return ""
	}
	return fmt.Sprintf(msgCalendarLink, link)
}

func isAuthFailure(err error) bool {
	return errors.Is(err, meeting.ErrAuth)
}

func isNoCalendar(err error) bool {
	return errors.Is(err, meeting.ErrNoCalendar)
}

func notFoundResponse(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}
	list := strings.Join(quoted, ", ")
	if len(names) == 1 {
		return fmt.Sprintf(msgNotFoundSingle, list)
	}
	return fmt.Sprintf(msgNotFoundMultiple, list)
}

// isQualifiedAttendee reports whether the value already carries an email,
// i.e. is in canonical "Name (email)" form.
func isQualifiedAttendee(value string) bool {
	return strings.Contains(value, "(") && strings.Contains(value, "@") && strings.Contains(value, ")")
}

// appendAttendee adds a value to the ATTENDEE slot unless already present.
func appendAttendee(sc *model.SessionContext, value string) {
	for _, existing := range sc.Slots[extractor.EntityAttendee] {
		if existing == value {
			return
		}
	}
	sc.Slots[extractor.EntityAttendee] = append(sc.Slots[extractor.EntityAttendee], value)
}

func removeAttendee(sc *model.SessionContext, value string) {
	values := sc.Slots[extractor.EntityAttendee]
	for i, existing := range values {
		if existing == value {
			sc.Slots[extractor.EntityAttendee] = append(values[:i], values[i+1:]...)
			return
		}
	}
}

// mergeReplace applies last-write-wins for the non-attendee slots. The
// ATTENDEE slot is only ever mutated through resolution, in canonical form.
func mergeReplace(sc *model.SessionContext, entities extractor.Entities) {
	for _, slot := range requiredSlots {
		if slot == extractor.EntityAttendee {
			continue
		}
		values := entities[slot]
		if len(values) == 0 {
			continue
		}
		sc.Slots[slot] = append([]string(nil), values...)
	}
}

// mergeConditional fills only empty non-attendee slots, so a value pinned
// earlier in the turn survives a disambiguation detour.
func mergeConditional(sc *model.SessionContext, entities extractor.Entities) {
	for _, slot := range requiredSlots {
		if slot == extractor.EntityAttendee {
			continue
		}
		values := entities[slot]
		if len(values) == 0 || len(sc.Slots[slot]) > 0 {
			continue
		}
		sc.Slots[slot] = append([]string(nil), values...)
	}
}

func formatContactOptions(contacts []model.Contact) string {
	lines := make([]string, len(contacts))
	for i, c := range contacts {
		lines[i] = fmt.Sprintf("%d. %s (%s)", i+1, c.FullName(), c.Email)
	}
	return strings.Join(lines, "\n")
}
