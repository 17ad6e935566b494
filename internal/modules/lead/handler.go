package lead

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NickolasCage52/School-MVP/internal/pkg/logger"
	"github.com/NickolasCage52/School-MVP/internal/pkg/response"
)

// User-facing messages. Validation errors are specific and localized; the
// honeypot and storage messages stay deliberately vague.
const (
	msgInvalidRequest = "Invalid request"
	msgInvalidPhone   = "Некорректный номер телефона"
	msgMissingFields  = "programId and programName required"
	msgMissingContact = "Укажите имя, email, телефон или Telegram"
	msgRateLimited    = "Слишком много заявок. Попробуйте позже."
	msgSaveFailed     = "Не удалось сохранить заявку"
)

type Handler struct {
	service *Service
	log     logger.Logger
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Submit handles POST /api/leads.
func (h *Handler) Submit(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, msgInvalidRequest)
		case errors.Is(err, ErrInvalidPhone):
			response.Error(c, http.StatusBadRequest, msgInvalidPhone)
		case errors.Is(err, ErrMissingRequiredFields):
			response.Error(c, http.StatusBadRequest, msgMissingFields)
		case errors.Is(err, ErrMissingContact):
			response.Error(c, http.StatusBadRequest, msgMissingContact)
		case errors.Is(err, ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, msgRateLimited)
		default:
			// Store failure: full detail stays server-side.
			h.log.Error("lead save failed", logger.Error(err))
			response.Error(c, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	out := gin.H{"id": result.ID, "ok": true}
	if result.Duplicate {
		out["duplicate"] = true
	}
	c.JSON(http.StatusCreated, out)
}
