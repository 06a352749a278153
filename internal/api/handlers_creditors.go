package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/store"
)

// ─── Creditors ──────────────────────────────────────────────────────────────

func (s *Server) handleListCreditors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Creditors())
}

func (s *Server) handleAddCreditor(w http.ResponseWriter, r *http.Request) {
	var c domain.Creditor
	if !readJSON(w, r, &c) {
		return
	}
	if c.Name == "" || c.ClientID == 0 {
		writeError(w, http.StatusBadRequest, "name and clientId are required")
		return
	}
	if c.ID == "" {
		c.ID = "GL-" + uuid.NewString()
	}
	// A new debt starts unreduced.
	if c.CurrentAmount.IsZero() && !c.OriginalAmount.IsZero() {
		c.CurrentAmount = c.OriginalAmount
	}
	s.store.AddCreditor(c)
	writeJSON(w, http.StatusCreated, c)
}

type creditorPatchReq struct {
	Name             *string                   `json:"name"`
	Type             *domain.CreditorType      `json:"typ"`
	CurrentAmount    *decimal.Decimal          `json:"aktuellerBetrag"`
	SettlementOffer  *decimal.Decimal          `json:"vergleichsAngebot"`
	SettlementAgreed *bool                     `json:"vergleichAkzeptiert"`
	AmountPaid       *decimal.Decimal          `json:"gezahlt"`
	Status           *domain.NegotiationStatus `json:"status"`
	Lawyer           *string                   `json:"anwalt"`
	ContactDate      *string                   `json:"kontaktDatum"`
	LastAction       *string                   `json:"letzteAktion"`
	NextDeadline     *string                   `json:"naechsteFrist"`
	NextDeadlineType *domain.DeadlineType      `json:"fristTyp"`
	Notes            *string                   `json:"notizen"`
	Garnishment      *bool                     `json:"pfaendung"`
	CaseReference    *string                   `json:"aktenzeichen"`
}

func (s *Server) handleUpdateCreditor(w http.ResponseWriter, r *http.Request) {
	var req creditorPatchReq
	if !readJSON(w, r, &req) {
		return
	}
	p := store.CreditorPatch{
		Name: req.Name, Type: req.Type, CurrentAmount: req.CurrentAmount,
		SettlementAgreed: req.SettlementAgreed, AmountPaid: req.AmountPaid,
		Status: req.Status, Lawyer: req.Lawyer, ContactDate: req.ContactDate,
		LastAction: req.LastAction, NextDeadline: req.NextDeadline,
		NextDeadlineType: req.NextDeadlineType, Notes: req.Notes,
		Garnishment: req.Garnishment, CaseReference: req.CaseReference,
	}
	if req.SettlementOffer != nil {
		p.SettlementOffer = &req.SettlementOffer
	}
	s.store.UpdateCreditor(chi.URLParam(r, "id"), p)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCreditor(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteCreditor(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClientCreditors(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.ledger.CreditorsForClient(id))
}

func (s *Server) handleClientTotals(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.ledger.Totals(id))
}

// ─── Progress ───────────────────────────────────────────────────────────────

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ProgressRecords())
}

func (s *Server) handleUpsertProgress(w http.ResponseWriter, r *http.Request) {
	clientID, err := numericID(r, "clientID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	var p domain.ClientProgress
	if !readJSON(w, r, &p) {
		return
	}
	p.ClientID = clientID
	if _, ok := domain.PhaseLabels[p.Phase]; !ok {
		writeError(w, http.StatusBadRequest, "unknown phase")
		return
	}
	s.store.UpsertProgress(p)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProgress(w http.ResponseWriter, r *http.Request) {
	clientID, err := numericID(r, "clientID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}
	s.store.DeleteProgress(clientID)
	w.WriteHeader(http.StatusNoContent)
}

// ─── Deadlines ──────────────────────────────────────────────────────────────

func (s *Server) handleListDeadlines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Open())
}

func (s *Server) handleClientDeadlines(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.ForClient(id))
}

func (s *Server) handleCriticalDeadlines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.UpcomingCritical())
}

func (s *Server) handleAddDeadline(w http.ResponseWriter, r *http.Request) {
	var d domain.Deadline
	if !readJSON(w, r, &d) {
		return
	}
	if d.Date == "" || d.ClientID == 0 {
		writeError(w, http.StatusBadRequest, "datum and clientId are required")
		return
	}
	if d.ID == "" {
		d.ID = "FR-" + uuid.NewString()
	}
	if d.ClientName == "" {
		if c, ok := s.store.Client(d.ClientID); ok {
			d.ClientName = c.Name
		}
	}
	s.store.AddDeadline(d)
	writeJSON(w, http.StatusCreated, d)
}

type deadlinePatchReq struct {
	ClientID    *int                 `json:"clientId"`
	ClientName  *string              `json:"clientName"`
	Type        *domain.DeadlineType `json:"typ"`
	Date        *string              `json:"datum"`
	Description *string              `json:"beschreibung"`
	Critical    *bool                `json:"kritisch"`
	Completed   *bool                `json:"erledigt"`
}

func (s *Server) handleUpdateDeadline(w http.ResponseWriter, r *http.Request) {
	var req deadlinePatchReq
	if !readJSON(w, r, &req) {
		return
	}
	s.store.UpdateDeadline(chi.URLParam(r, "id"), store.DeadlinePatch{
		ClientID: req.ClientID, ClientName: req.ClientName, Type: req.Type,
		Date: req.Date, Description: req.Description,
		Critical: req.Critical, Completed: req.Completed,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteDeadline(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteDeadline(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ─── Aggregates ─────────────────────────────────────────────────────────────

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Pipeline())
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Portfolio())
}

func (s *Server) handleSuccesses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Successes())
}

func (s *Server) handleLedgerCheck(w http.ResponseWriter, r *http.Request) {
	issues := s.ledger.Check()
	writeJSON(w, http.StatusOK, map[string]any{
		"consistent": len(issues) == 0,
		"issues":     issues,
	})
}
