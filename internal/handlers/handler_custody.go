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

// custodyHandler handles HTTP requests related to custody advances.
type custodyHandler struct {
	custodyService portssvc.CustodySvcFacade
}

// RegisterCustodyRoutes registers routes related to custody advances.
func RegisterCustodyRoutes(rg *gin.RouterGroup, custodyService portssvc.CustodySvcFacade) {
	h := &custodyHandler{custodyService: custodyService}

	custodies := rg.Group("/custodies")
	{
		custodies.POST("", h.openCustody)
		custodies.GET("", h.listCustodies)
		custodies.GET("/:id", h.getCustody)
		custodies.POST("/:id/close", h.closeCustody)
	}

	// Exposure is an employee-scoped view over custody records
	rg.GET("/employees/:id/exposure", h.getExposure)
}

// openCustody godoc
// @Summary Open a custody advance
// @Description Hands out a new cash advance to an employee
// @Tags custodies
// @Accept  json
// @Produce  json
// @Param   custody body dto.OpenCustodyRequest true "Custody details"
// @Success 201 {object} dto.CustodyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to open custody"
// @Router /custodies [post]
func (h *custodyHandler) openCustody(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenCustodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenCustody", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	custody, err := h.custodyService.OpenCustody(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to open custody in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open custody"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustodyResponse(custody))
}

// closeCustody godoc
// @Summary Close a custody advance
// @Description Settles an active custody; return amount is computed from expenses
// @Tags custodies
// @Accept  json
// @Produce  json
// @Param   id path string true "Custody ID"
// @Param   close body dto.CloseCustodyRequest true "Settlement details"
// @Success 200 {object} dto.CustodyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Custody not found"
// @Failure 409 {object} map[string]string "Custody already closed"
// @Failure 500 {object} map[string]string "Failed to close custody"
// @Router /custodies/{id}/close [post]
func (h *custodyHandler) closeCustody(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	custodyID := c.Param("id")

	var req dto.CloseCustodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseCustody", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	custody, err := h.custodyService.CloseCustody(c.Request.Context(), custodyID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Custody not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to close custody in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close custody"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustodyResponse(custody))
}

// getCustody godoc
// @Summary Get a custody record by ID
// @Tags custodies
// @Produce  json
// @Param   id path string true "Custody ID"
// @Success 200 {object} dto.CustodyResponse
// @Failure 404 {object} map[string]string "Custody not found"
// @Failure 500 {object} map[string]string "Failed to retrieve custody"
// @Router /custodies/{id} [get]
func (h *custodyHandler) getCustody(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	custodyID := c.Param("id")

	custody, err := h.custodyService.GetCustodyByID(c.Request.Context(), custodyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Custody not found"})
		} else {
			logger.Error("Failed to get custody from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve custody"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCustodyResponse(custody))
}

// listCustodies godoc
// @Summary List custody records
// @Description Retrieves custody records, optionally filtered by employee
// @Tags custodies
// @Produce  json
// @Param   employeeID query string false "Filter by employee"
// @Success 200 {object} dto.ListCustodiesResponse
// @Failure 500 {object} map[string]string "Failed to list custodies"
// @Router /custodies [get]
func (h *custodyHandler) listCustodies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCustodiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	custodies, err := h.custodyService.ListCustodies(c.Request.Context(), params.EmployeeID)
	if err != nil {
		logger.Error("Failed to list custodies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list custodies"})
		return
	}

	resp := dto.ListCustodiesResponse{Custodies: make([]dto.CustodyResponse, 0, len(custodies))}
	for i := range custodies {
		resp.Custodies = append(resp.Custodies, dto.ToCustodyResponse(&custodies[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getExposure godoc
// @Summary Get an employee's custody exposure
// @Description Sums amount - returnAmount - expenses over the employee's custody records
// @Tags custodies
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.CustodyExposureResponse
// @Failure 500 {object} map[string]string "Failed to compute exposure"
// @Router /employees/{id}/exposure [get]
func (h *custodyHandler) getExposure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	exposure, err := h.custodyService.ExposureForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		logger.Error("Failed to compute custody exposure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute exposure"})
		return
	}

	c.JSON(http.StatusOK, dto.CustodyExposureResponse{EmployeeID: employeeID, Exposure: exposure})
}
