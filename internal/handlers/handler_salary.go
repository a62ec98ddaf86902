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

// salaryHandler handles HTTP requests related to salary transactions and
// statements.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
}

// registerSalaryRoutes registers routes related to the salary engine.
func registerSalaryRoutes(rg *gin.RouterGroup, salaryService portssvc.SalarySvcFacade) {
	h := &salaryHandler{salaryService: salaryService}

	salaries := rg.Group("/salaries")
	{
		salaries.POST("/transactions", h.addTransaction)
		salaries.GET("/transactions", h.listTransactions)
		salaries.DELETE("/transactions/:id", h.deleteTransaction)
		salaries.GET("/statements", h.listStatements)
	}

	rg.GET("/employees/:id/statement", h.getStatement)
}

// addTransaction godoc
// @Summary Record a salary transaction
// @Description Records a wage-affecting transaction for an employee
// @Tags salaries
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateSalaryTransactionRequest true "Transaction details"
// @Success 201 {object} dto.SalaryTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /salaries/transactions [post]
func (h *salaryHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSalaryTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	txn, err := h.salaryService.AddTransaction(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to record salary transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalaryTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List salary transactions
// @Description Retrieves transactions, optionally filtered by employee
// @Tags salaries
// @Produce  json
// @Param   employeeID query string false "Filter by employee"
// @Success 200 {object} dto.ListSalaryTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /salaries/transactions [get]
func (h *salaryHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalaryTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.salaryService.ListTransactions(c.Request.Context(), params.EmployeeID)
	if err != nil {
		logger.Error("Failed to list salary transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	resp := dto.ListSalaryTransactionsResponse{Transactions: make([]dto.SalaryTransactionResponse, 0, len(txns))}
	for i := range txns {
		resp.Transactions = append(resp.Transactions, dto.ToSalaryTransactionResponse(&txns[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// deleteTransaction godoc
// @Summary Delete a salary transaction
// @Tags salaries
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /salaries/transactions/{id} [delete]
func (h *salaryHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	actorID := middleware.GetActorFromContext(c)

	if err := h.salaryService.DeleteTransaction(c.Request.Context(), transactionID, actorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete salary transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// getStatement godoc
// @Summary Get an employee's salary statement
// @Description Recomputes the employee's net pay position from current records
// @Tags salaries
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.SalaryStatementResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to compute statement"
// @Router /employees/{id}/statement [get]
func (h *salaryHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	statement, err := h.salaryService.ComputeStatement(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to compute salary statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSalaryStatementResponse(*statement))
}

// listStatements godoc
// @Summary List salary statements for all employees
// @Tags salaries
// @Produce  json
// @Success 200 {array} dto.SalaryStatementResponse
// @Failure 500 {object} map[string]string "Failed to compute statements"
// @Router /salaries/statements [get]
func (h *salaryHandler) listStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statements, err := h.salaryService.ComputeAllStatements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute salary statements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statements"})
		return
	}

	resp := make([]dto.SalaryStatementResponse, 0, len(statements))
	for _, st := range statements {
		resp = append(resp, dto.ToSalaryStatementResponse(st))
	}
	c.JSON(http.StatusOK, resp)
}
