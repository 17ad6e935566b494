package admin

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NickolasCage52/School-MVP/internal/domain"
	"github.com/NickolasCage52/School-MVP/internal/pkg/logger"
	"github.com/NickolasCage52/School-MVP/internal/pkg/response"
	"github.com/NickolasCage52/School-MVP/internal/pkg/validator"
	"github.com/NickolasCage52/School-MVP/internal/repository"
)

// csvColumns fixes the export column order the sales side relies on.
var csvColumns = []string{
	"id", "createdAt", "updatedAt", "status", "programId", "programName", "direction",
	"selectedPackage", "priceShown", "clientName", "email", "phone",
	"telegramUserId", "telegramUsername", "telegramFirstName", "telegramLastName",
	"utmSource", "utmMedium", "utmCampaign", "utmContent", "utmTerm",
	"answers", "device",
}

type Handler struct {
	leads    *repository.LeadRepository
	programs *repository.CatalogRepository
	log      logger.Logger
}

func NewHandler(leads *repository.LeadRepository, programs *repository.CatalogRepository, log logger.Logger) *Handler {
	return &Handler{leads: leads, programs: programs, log: log}
}

// ListLeads handles GET /api/admin/leads with program/status/date filters.
func (h *Handler) ListLeads(c *gin.Context) {
	filters := parseFilters(c)

	page := 0
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	leads, total, err := h.leads.List(c.Request.Context(), filters, page)
	if err != nil {
		h.log.Error("lead list failed", logger.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load leads")
		return
	}
	if leads == nil {
		leads = []domain.Lead{}
	}

	c.JSON(http.StatusOK, LeadListResponse{
		Leads:    leads,
		Total:    total,
		Page:     page,
		PageSize: repository.LeadPageSize,
	})
}

// UpdateLeadStatus handles PATCH /api/admin/leads/:id.
func (h *Handler) UpdateLeadStatus(c *gin.Context) {
	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid status")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.Error(c, http.StatusBadRequest, "Invalid status")
		return
	}

	lead, err := h.leads.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.log.Error("lead status update failed", logger.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to update lead")
		return
	}
	if lead == nil {
		response.Error(c, http.StatusNotFound, "Lead not found")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ExportLeads handles GET /api/admin/leads/export as CSV.
func (h *Handler) ExportLeads(c *gin.Context) {
	filters := repository.LeadFilters{
		ProgramID: c.Query("programId"),
		Status:    c.Query("status"),
	}

	leads, err := h.leads.ListAll(c.Request.Context(), filters)
	if err != nil {
		h.log.Error("lead export failed", logger.Error(err))
		response.Error(c, http.StatusInternalServerError, "Export failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=leads.csv")
	// BOM keeps Excel happy with Cyrillic content.
	c.Writer.WriteString("\uFEFF")

	w := csv.NewWriter(c.Writer)
	w.UseCRLF = true
	_ = w.Write(csvColumns)
	for i := range leads {
		_ = w.Write(csvRow(&leads[i]))
	}
	w.Flush()
}

// ListPrograms handles GET /api/admin/programs.
func (h *Handler) ListPrograms(c *gin.Context) {
	programs, err := h.programs.ListProgramRefs(c.Request.Context())
	if err != nil {
		h.log.Error("program list failed", logger.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load programs")
		return
	}

	refs := make([]ProgramRef, 0, len(programs))
	for _, p := range programs {
		refs = append(refs, ProgramRef{ID: p.ID, Title: p.Title})
	}

	c.JSON(http.StatusOK, gin.H{"programs": refs})
}

func parseFilters(c *gin.Context) repository.LeadFilters {
	f := repository.LeadFilters{
		ProgramID: c.Query("programId"),
		Status:    c.Query("status"),
	}
	if t, ok := parseTime(c.Query("from")); ok {
		f.From = &t
	}
	if t, ok := parseTime(c.Query("to")); ok {
		f.To = &t
	}
	return f
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func csvRow(l *domain.Lead) []string {
	price := ""
	if l.PriceShown != nil {
		price = strconv.Itoa(*l.PriceShown)
	}
	return []string{
		l.ID,
		l.CreatedAt.UTC().Format(time.RFC3339),
		l.UpdatedAt.UTC().Format(time.RFC3339),
		string(l.Status),
		l.ProgramID,
		l.ProgramName,
		l.Direction,
		l.SelectedPackage,
		price,
		l.ClientName,
		l.Email,
		l.Phone,
		l.TelegramUserID,
		l.TelegramUsername,
		l.TelegramFirstName,
		l.TelegramLastName,
		l.UTMSource,
		l.UTMMedium,
		l.UTMCampaign,
		l.UTMContent,
		l.UTMTerm,
		l.Answers,
		l.Device,
	}
}
