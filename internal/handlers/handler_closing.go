package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhasibpro/muhasib_app/internal/apperrors"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
	"github.com/muhasibpro/muhasib_app/internal/dto"
	"github.com/muhasibpro/muhasib_app/internal/middleware"
)

// closingHandler handles HTTP requests related to daily closings.
type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
}

// RegisterClosingRoutes registers routes related to daily closings.
func RegisterClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade) {
	h := &closingHandler{closingService: closingService}

	closings := rg.Group("/closings")
	{
		closings.POST("", h.createClosing)
		closings.GET("", h.listClosings)
		closings.GET("/:id", h.getClosing)
	}
}

// createClosing godoc
// @Summary Record a daily closing
// @Description Records one day's counted-versus-system reconciliation; the variance is computed server-side
// @Tags closings
// @Accept  json
// @Produce  json
// @Param   closing body dto.CreateClosingRequest true "Closing details"
// @Success 201 {object} dto.ClosingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record closing"
// @Router /closings [post]
func (h *closingHandler) createClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	closing, err := h.closingService.CreateClosing(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record closing in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record closing"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToClosingResponse(closing))
}

// getClosing godoc
// @Summary Get a daily closing by ID
// @Tags closings
// @Produce  json
// @Param   id path string true "Closing ID"
// @Success 200 {object} dto.ClosingResponse
// @Failure 404 {object} map[string]string "Closing not found"
// @Failure 500 {object} map[string]string "Failed to retrieve closing"
// @Router /closings/{id} [get]
func (h *closingHandler) getClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closingID := c.Param("id")

	closing, err := h.closingService.GetClosingByID(c.Request.Context(), closingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Closing not found"})
		} else {
			logger.Error("Failed to get closing from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve closing"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClosingResponse(closing))
}

// listClosings godoc
// @Summary List daily closings
// @Description Retrieves a paginated list of closings, newest date first
// @Tags closings
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListClosingsResponse
// @Failure 500 {object} map[string]string "Failed to list closings"
// @Router /closings [get]
func (h *closingHandler) listClosings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClosingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	closings, err := h.closingService.ListClosings(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list closings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list closings"})
		return
	}

	resp := dto.ListClosingsResponse{Closings: make([]dto.ClosingResponse, 0, len(closings))}
	for i := range closings {
		resp.Closings = append(resp.Closings, dto.ToClosingResponse(&closings[i]))
	}
	c.JSON(http.StatusOK, resp)
}
