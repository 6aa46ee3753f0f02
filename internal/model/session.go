package model

// Mode is the high-level conversation state of a session.
type Mode string

const (
	// ModeNormal processes inbound messages as scheduling content.
	ModeNormal Mode = "normal"
	// ModeAwaitingSelection interprets the next message as a pick from
	// Pending.Options instead of new scheduling content.
	ModeAwaitingSelection Mode = "awaiting_selection"
)

// PendingSelection marks an in-flight attendee disambiguation. Options is
// 1-indexed from the user's point of view.
type PendingSelection struct {
	Attendee string
	Options  []Contact
}

// SessionContext is the accumulated slot state of one conversation session.
// DATE/TIME/DURATION hold at most one effective value (latest wins);
// ATTENDEE accumulates a duplicate-free list.
type SessionContext struct {
	Slots          map[string][]string
	AttendeeEmails map[string]string
	Summary        string
	Complete       bool
	Mode           Mode
	Pending        *PendingSelection
}

// NewSessionContext returns an empty context in normal mode with all
// required slots present but unfilled.
func NewSessionContext(slotNames []string) SessionContext {
	slots := make(map[string][]string, len(slotNames))
	for _, name := range slotNames {
		slots[name] = nil
	}
	return SessionContext{
		Slots:          slots,
		AttendeeEmails: make(map[string]string),
		Mode:           ModeNormal,
	}
}

// Clone returns a deep copy so stored contexts never alias an in-flight turn.
func (sc SessionContext) Clone() SessionContext {
	out := sc
	out.Slots = make(map[string][]string, len(sc.Slots))
	for k, v := range sc.Slots {
		out.Slots[k] = append([]string(nil), v...)
	}
	out.AttendeeEmails = make(map[string]string, len(sc.AttendeeEmails))
	for k, v := range sc.AttendeeEmails {
		out.AttendeeEmails[k] = v
	}
	if sc.Pending != nil {
		pending := PendingSelection{
			Attendee: sc.Pending.Attendee,
			Options:  append([]Contact(nil), sc.Pending.Options...),
		}
		out.Pending = &pending
	}
	return out
}
