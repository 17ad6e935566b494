package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NickolasCage52/School-MVP/internal/pkg/logger"
	"github.com/NickolasCage52/School-MVP/internal/pkg/response"
	"github.com/NickolasCage52/School-MVP/internal/repository"
)

type Handler struct {
	repo *repository.CatalogRepository
	log  logger.Logger
}

func NewHandler(repo *repository.CatalogRepository, log logger.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// GetCatalog handles GET /api/catalog.
func (h *Handler) GetCatalog(c *gin.Context) {
	directions, err := h.repo.GetDirections(c.Request.Context())
	if err != nil {
		h.log.Error("catalog load failed", logger.Error(err))
		response.Error(c, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	out := make([]DirectionOut, 0, len(directions))
	for _, d := range directions {
		dir := DirectionOut{
			ID:       d.ID,
			Name:     d.Name,
			Slug:     d.Slug,
			OrderNum: d.OrderNum,
			Programs: []ProgramCard{},
		}
		for i := range d.Programs {
			dir.Programs = append(dir.Programs, toCard(&d.Programs[i]))
		}
		out = append(out, dir)
	}

	c.JSON(http.StatusOK, gin.H{"directions": out})
}

// GetProgram handles GET /api/programs/:id.
func (h *Handler) GetProgram(c *gin.Context) {
	id := c.Param("id")

	program, err := h.repo.GetProgramByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("program load failed", logger.String("program_id", id), logger.Error(err))
		response.Error(c, http.StatusInternalServerError, "Не удалось загрузить программу. Попробуйте позже.")
		return
	}
	if program == nil {
		response.Error(c, http.StatusNotFound, "Программа не найдена")
		return
	}

	c.JSON(http.StatusOK, toDetail(program))
}
