package store

import (
	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
)

// Typed partial updates. A nil field means "leave unchanged"; a set field
// overwrites. Fields that are pointers on the entity itself use a double
// pointer so that clearing (set to nil) stays expressible.

// ClientPatch is a partial update for a client.
type ClientPatch struct {
	Name    *string
	Company *string
	Type    *domain.ConsultationType
	Subtype *string
	Phone   *string
	Email   *string
	Address *string
	Status  *domain.ClientStatus
	Debt    **decimal.Decimal
	Created *string
	Notes   *string
}

func (p ClientPatch) apply(c *domain.Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Subtype != nil {
		c.Subtype = *p.Subtype
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Debt != nil {
		c.Debt = *p.Debt
	}
	if p.Created != nil {
		c.Created = *p.Created
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}

// AppointmentPatch is a partial update for an appointment.
type AppointmentPatch struct {
	ClientID *int
	Title    *string
	Date     *string
	Time     *string
	Duration *int
	Type     *domain.ConsultationType
	Location *string
	Priority *domain.Priority
}

func (p AppointmentPatch) apply(a *domain.Appointment) {
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
}

// InvoicePatch is a partial update for an invoice. The id is immutable.
type InvoicePatch struct {
	ClientID    *int
	Amount      *decimal.Decimal
	Date        *string
	Due         *string
	Status      *domain.InvoiceStatus
	Description *string
}

func (p InvoicePatch) apply(inv *domain.Invoice) {
	if p.ClientID != nil {
		inv.ClientID = *p.ClientID
	}
	if p.Amount != nil {
		inv.Amount = *p.Amount
	}
	if p.Date != nil {
		inv.Date = *p.Date
	}
	if p.Due != nil {
		inv.Due = *p.Due
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.Description != nil {
		inv.Description = *p.Description
	}
}

// OfferPatch is a partial update for an offer. The id is immutable.
type OfferPatch struct {
	ClientID    *int
	Amount      *decimal.Decimal
	Date        *string
	ValidUntil  *string
	Status      *domain.OfferStatus
	Description *string
}

func (p OfferPatch) apply(o *domain.Offer) {
	if p.ClientID != nil {
		o.ClientID = *p.ClientID
	}
	if p.Amount != nil {
		o.Amount = *p.Amount
	}
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.ValidUntil != nil {
		o.ValidUntil = *p.ValidUntil
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
}

// CreditorPatch is a partial update for a creditor. OriginalAmount has no
// patch field: it is fixed at intake.
type CreditorPatch struct {
	Name             *string
	Type             *domain.CreditorType
	CurrentAmount    *decimal.Decimal
	SettlementOffer  **decimal.Decimal
	SettlementAgreed *bool
	AmountPaid       *decimal.Decimal
	Status           *domain.NegotiationStatus
	Lawyer           *string
	ContactDate      *string
	LastAction       *string
	NextDeadline     *string
	NextDeadlineType *domain.DeadlineType
	Notes            *string
	Garnishment      *bool
	CaseReference    *string
}

func (p CreditorPatch) apply(c *domain.Creditor) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.CurrentAmount != nil {
		c.CurrentAmount = *p.CurrentAmount
	}
	if p.SettlementOffer != nil {
		c.SettlementOffer = *p.SettlementOffer
	}
	if p.SettlementAgreed != nil {
		c.SettlementAgreed = *p.SettlementAgreed
	}
	if p.AmountPaid != nil {
		c.AmountPaid = *p.AmountPaid
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Lawyer != nil {
		c.Lawyer = *p.Lawyer
	}
	if p.ContactDate != nil {
		c.ContactDate = *p.ContactDate
	}
	if p.LastAction != nil {
		c.LastAction = *p.LastAction
	}
	if p.NextDeadline != nil {
		c.NextDeadline = *p.NextDeadline
	}
	if p.NextDeadlineType != nil {
		c.NextDeadlineType = *p.NextDeadlineType
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Garnishment != nil {
		c.Garnishment = *p.Garnishment
	}
	if p.CaseReference != nil {
		c.CaseReference = *p.CaseReference
	}
}

// DeadlinePatch is a partial update for a deadline.
type DeadlinePatch struct {
	ClientID    *int
	ClientName  *string
	Type        *domain.DeadlineType
	Date        *string
	Description *string
	Critical    *bool
	Completed   *bool
}

func (p DeadlinePatch) apply(d *domain.Deadline) {
	if p.ClientID != nil {
		d.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		d.ClientName = *p.ClientName
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Critical != nil {
		d.Critical = *p.Critical
	}
	if p.Completed != nil {
		d.Completed = *p.Completed
	}
}
