package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/paylog/backend/internal/application/billing"
)

// CreditNoteHandler handles credit note API endpoints
type CreditNoteHandler struct {
	BaseHandler
	creditNoteService *billingapp.CreditNoteService
}

// NewCreditNoteHandler creates a new CreditNoteHandler
func NewCreditNoteHandler(creditNoteService *billingapp.CreditNoteService) *CreditNoteHandler {
	return &CreditNoteHandler{creditNoteService: creditNoteService}
}

// Create handles POST /credit-notes
func (h *CreditNoteHandler) Create(c *gin.Context) {
	var req billingapp.CreateCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	note, err := h.creditNoteService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, note)
}

// ListByInvoice handles GET /invoices/:id/credit-notes
func (h *CreditNoteHandler) ListByInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID format")
		return
	}

	notes, err := h.creditNoteService.ListByInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, notes)
}

// Apply handles POST /credit-notes/:id/apply
func (h *CreditNoteHandler) Apply(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid credit note ID format")
		return
	}

	note, err := h.creditNoteService.Apply(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}

// Void handles POST /credit-notes/:id/void
func (h *CreditNoteHandler) Void(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid credit note ID format")
		return
	}

	note, err := h.creditNoteService.Void(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, note)
}
