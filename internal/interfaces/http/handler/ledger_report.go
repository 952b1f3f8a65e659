package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	reportapp "github.com/paylog/backend/internal/application/report"
)

// LedgerReportHandler handles the ledger report API endpoints
type LedgerReportHandler struct {
	BaseHandler
	ledgerService *reportapp.LedgerService
}

// NewLedgerReportHandler creates a new LedgerReportHandler
func NewLedgerReportHandler(ledgerService *reportapp.LedgerService) *LedgerReportHandler {
	return &LedgerReportHandler{ledgerService: ledgerService}
}

// ledgerQueryParams are the query parameters accepted by the
// per-profile ledger endpoints
type ledgerQueryParams struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	EntryType string `form:"entry_type" binding:"omitempty,oneof=invoice payment"`
	Search    string `form:"search"`
}

// ListProfiles handles GET /reports/ledger. It returns one summary row
// per active billing profile.
func (h *LedgerReportHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.ledgerService.GetLedgerProfiles(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profiles)
}

// GetByProfile handles GET /reports/ledger/:id
func (h *LedgerReportHandler) GetByProfile(c *gin.Context) {
	query, ok := h.bindLedgerQuery(c)
	if !ok {
		return
	}

	result, err := h.ledgerService.GetLedgerByProfile(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Export handles GET /reports/ledger/:id/export, streaming the ledger
// as a CSV attachment
func (h *LedgerReportHandler) Export(c *gin.Context) {
	query, ok := h.bindLedgerQuery(c)
	if !ok {
		return
	}

	data, err := h.ledgerService.ExportLedgerCSV(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("ledger-%s.csv", query.ProfileID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *LedgerReportHandler) bindLedgerQuery(c *gin.Context) (reportapp.LedgerQuery, bool) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid profile ID format")
		return reportapp.LedgerQuery{}, false
	}

	var params ledgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BadRequest(c, err.Error())
		return reportapp.LedgerQuery{}, false
	}

	start, err := parseDateParam(params.StartDate)
	if err != nil {
		h.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
		return reportapp.LedgerQuery{}, false
	}
	end, err := parseDateParam(params.EndDate)
	if err != nil {
		h.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
		return reportapp.LedgerQuery{}, false
	}

	return reportapp.LedgerQuery{
		ProfileID: id,
		StartDate: start,
		EndDate:   end,
		EntryType: params.EntryType,
		Search:    params.Search,
	}, true
}
