package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ce-es/dashboard/internal/domain"
	"github.com/ce-es/dashboard/internal/store"
)

func numericID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// ─── Clients ────────────────────────────────────────────────────────────────

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Clients())
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	c, ok := s.store.Client(id)
	if !ok {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleAddClient(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if !readJSON(w, r, &c) {
		return
	}
	if c.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	c.ID = s.store.AddClient(c)
	writeJSON(w, http.StatusCreated, c)
}

// clientPatchReq mirrors the client's wire fields with optional
// presence. Absent fields stay untouched.
type clientPatchReq struct {
	Name    *string                  `json:"name"`
	Company *string                  `json:"company"`
	Type    *domain.ConsultationType `json:"type"`
	Subtype *string                  `json:"subtype"`
	Phone   *string                  `json:"phone"`
	Email   *string                  `json:"email"`
	Address *string                  `json:"address"`
	Status  *domain.ClientStatus     `json:"status"`
	Debt    *decimal.Decimal         `json:"schulden"`
	Created *string                  `json:"created"`
	Notes   *string                  `json:"notes"`
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req clientPatchReq
	if !readJSON(w, r, &req) {
		return
	}
	p := store.ClientPatch{
		Name: req.Name, Company: req.Company, Type: req.Type, Subtype: req.Subtype,
		Phone: req.Phone, Email: req.Email, Address: req.Address, Status: req.Status,
		Created: req.Created, Notes: req.Notes,
	}
	if req.Debt != nil {
		p.Debt = &req.Debt
	}
	s.store.UpdateClient(id, p)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	s.store.DeleteClient(id)
	w.WriteHeader(http.StatusNoContent)
}

// ─── Appointments ───────────────────────────────────────────────────────────

func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Appointments())
}

func (s *Server) handleAddAppointment(w http.ResponseWriter, r *http.Request) {
	var a domain.Appointment
	if !readJSON(w, r, &a) {
		return
	}
	if a.Title == "" || a.Date == "" {
		writeError(w, http.StatusBadRequest, "title and date are required")
		return
	}
	a.ID = s.store.AddAppointment(a)
	writeJSON(w, http.StatusCreated, a)
}

type appointmentPatchReq struct {
	ClientID *int                     `json:"clientId"`
	Title    *string                  `json:"title"`
	Date     *string                  `json:"date"`
	Time     *string                  `json:"time"`
	Duration *int                     `json:"duration"`
	Type     *domain.ConsultationType `json:"type"`
	Location *string                  `json:"location"`
	Priority *domain.Priority         `json:"priority"`
}

func (s *Server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req appointmentPatchReq
	if !readJSON(w, r, &req) {
		return
	}
	s.store.UpdateAppointment(id, store.AppointmentPatch{
		ClientID: req.ClientID, Title: req.Title, Date: req.Date, Time: req.Time,
		Duration: req.Duration, Type: req.Type, Location: req.Location, Priority: req.Priority,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	s.store.DeleteAppointment(id)
	w.WriteHeader(http.StatusNoContent)
}

// ─── Invoices / Offers ──────────────────────────────────────────────────────

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Invoices())
}

func (s *Server) handleNextInvoiceID(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"id": s.store.NextInvoiceID()})
}

func (s *Server) handleAddInvoice(w http.ResponseWriter, r *http.Request) {
	var inv domain.Invoice
	if !readJSON(w, r, &inv) {
		return
	}
	inv.ID = s.store.AddInvoice(inv)
	writeJSON(w, http.StatusCreated, inv)
}

type invoicePatchReq struct {
	ClientID    *int                  `json:"clientId"`
	Amount      *decimal.Decimal      `json:"amount"`
	Date        *string               `json:"date"`
	Due         *string               `json:"due"`
	Status      *domain.InvoiceStatus `json:"status"`
	Description *string               `json:"description"`
}

func (s *Server) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoicePatchReq
	if !readJSON(w, r, &req) {
		return
	}
	s.store.UpdateInvoice(chi.URLParam(r, "id"), store.InvoicePatch{
		ClientID: req.ClientID, Amount: req.Amount, Date: req.Date, Due: req.Due,
		Status: req.Status, Description: req.Description,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteInvoice(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListOffers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Offers())
}

func (s *Server) handleNextOfferID(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"id": s.store.NextOfferID()})
}

func (s *Server) handleAddOffer(w http.ResponseWriter, r *http.Request) {
	var o domain.Offer
	if !readJSON(w, r, &o) {
		return
	}
	o.ID = s.store.AddOffer(o)
	writeJSON(w, http.StatusCreated, o)
}

type offerPatchReq struct {
	ClientID    *int                `json:"clientId"`
	Amount      *decimal.Decimal    `json:"amount"`
	Date        *string             `json:"date"`
	ValidUntil  *string             `json:"validUntil"`
	Status      *domain.OfferStatus `json:"status"`
	Description *string             `json:"description"`
}

func (s *Server) handleUpdateOffer(w http.ResponseWriter, r *http.Request) {
	var req offerPatchReq
	if !readJSON(w, r, &req) {
		return
	}
	s.store.UpdateOffer(chi.URLParam(r, "id"), store.OfferPatch{
		ClientID: req.ClientID, Amount: req.Amount, Date: req.Date,
		ValidUntil: req.ValidUntil, Status: req.Status, Description: req.Description,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteOffer(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteOffer(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ─── Case Files / Documents ─────────────────────────────────────────────────

func (s *Server) handleListCaseFiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.CaseFiles())
}

func (s *Server) handleGetCaseFile(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	for _, cf := range s.store.CaseFiles() {
		if cf.ID == id {
			writeJSON(w, http.StatusOK, cf)
			return
		}
	}
	writeError(w, http.StatusNotFound, "case file not found")
}

func (s *Server) handleAddCaseFile(w http.ResponseWriter, r *http.Request) {
	var cf domain.CaseFile
	if !readJSON(w, r, &cf) {
		return
	}
	if cf.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if cf.LastUpdate == "" {
		cf.LastUpdate = s.today()
	}
	cf.ID = s.store.AddCaseFile(cf)
	writeJSON(w, http.StatusCreated, cf)
}

func (s *Server) handleDeleteCaseFile(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	s.store.DeleteCaseFile(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var doc domain.Document
	if !readJSON(w, r, &doc) {
		return
	}
	if doc.ID == "" {
		doc.ID = "doc-" + uuid.NewString()
	}
	if doc.Date == "" {
		doc.Date = s.today()
	}
	s.store.AddDocumentToFile(id, doc)
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := numericID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	s.store.DeleteDocument(id, chi.URLParam(r, "docID"))
	w.WriteHeader(http.StatusNoContent)
}

// handleScanDocument files an uploaded scan into a case file. The
// document type derives from the filename extension.
func (s *Server) handleScanDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileID   int    `json:"fileId"`
		Name     string `json:"name"`
		Size     string `json:"size"`
		FileData string `json:"fileData"`
		MimeType string `json:"mimeType"`
		Preview  string `json:"preview"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	ext := ""
	if i := strings.LastIndex(req.Name, "."); i >= 0 {
		ext = strings.ToLower(req.Name[i+1:])
	}
	doc := domain.Document{
		ID:       "doc-" + uuid.NewString(),
		Name:     req.Name,
		Type:     domain.DocTypeForExtension(ext),
		Size:     req.Size,
		Date:     s.today(),
		Preview:  req.Preview,
		FileData: req.FileData,
		MimeType: req.MimeType,
	}
	s.store.AddDocumentToFile(req.FileID, doc)
	writeJSON(w, http.StatusCreated, doc)
}
