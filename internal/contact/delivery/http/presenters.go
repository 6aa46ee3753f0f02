package http

import (
	"time"

	"scheduling-assistant/internal/contact"
	"scheduling-assistant/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=100"`
	Email     string `json:"email"      binding:"required,email"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() contact.CreateContactInput {
	return contact.CreateContactInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// ---

type updateReq struct {
	ID        int64  `json:"-"` // populated from URI param
	FirstName string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  string `json:"last_name"  binding:"omitempty,min=1,max=100"`
	Email     string `json:"email"      binding:"omitempty,email"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() contact.UpdateContactInput {
	return contact.UpdateContactInput{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

// --- Response DTOs ---

type contactResp struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newContactResp(c model.Contact) contactResp {
	return contactResp{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

type createResp struct {
	Contact contactResp `json:"contact"`
}

func (h *handler) newCreateResp(out contact.CreateContactOutput) createResp {
	return createResp{Contact: newContactResp(out.Contact)}
}

type listResp struct {
	Contacts []contactResp `json:"contacts"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out contact.ListContactsOutput) listResp {
	contacts := make([]contactResp, len(out.Contacts))
	for i, c := range out.Contacts {
		contacts[i] = newContactResp(c)
	}
	return listResp{Contacts: contacts, Total: out.Total}
}

type detailResp struct {
	Contact contactResp `json:"contact"`
}

func (h *handler) newDetailResp(out contact.DetailContactOutput) detailResp {
	return detailResp{Contact: newContactResp(out.Contact)}
}

type updateResp struct {
	Contact contactResp `json:"contact"`
}

func (h *handler) newUpdateResp(out contact.UpdateContactOutput) updateResp {
	return updateResp{Contact: newContactResp(out.Contact)}
}
