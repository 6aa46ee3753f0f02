package http

import (
	"scheduling-assistant/internal/chat"
	"scheduling-assistant/internal/model"
)

// --- Request DTOs ---

type messageReq struct {
	Message string `json:"message" binding:"required"`
}

// --- Response DTOs ---

type messageResp struct {
	Response string              `json:"response"`
	Entities map[string][]string `json:"entities"`
	Complete bool                `json:"complete"`
}

func (h *handler) newMessageResp(out chat.ProcessOutput) messageResp {
	entities := map[string][]string{}
	for k, v := range out.Entities {
		entities[k] = v
	}
	return messageResp{
		Response: out.Response,
		Entities: entities,
		Complete: out.Complete,
	}
}

type contextResp struct {
	Slots          map[string][]string `json:"slots"`
	AttendeeEmails map[string]string   `json:"attendee_emails"`
	Summary        string              `json:"summary,omitempty"`
	Complete       bool                `json:"complete"`
	Mode           string              `json:"mode"`
}

func (h *handler) newContextResp(sc model.SessionContext) contextResp {
	slots := make(map[string][]string, len(sc.Slots))
	for k, v := range sc.Slots {
		slots[k] = append([]string{}, v...)
	}
	emails := make(map[string]string, len(sc.AttendeeEmails))
	for k, v := range sc.AttendeeEmails {
		emails[k] = v
	}
	return contextResp{
		Slots:          slots,
		AttendeeEmails: emails,
		Summary:        sc.Summary,
		Complete:       sc.Complete,
		Mode:           string(sc.Mode),
	}
}

type exportResp struct {
	SessionID string      `json:"session_id"`
	Context   contextResp `json:"context"`
}
