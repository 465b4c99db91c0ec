package handlers

import (
	"time"

	"parkwise/internal/models"
	"parkwise/internal/services"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionService services.TransactionService
}

func NewTransactionHandler(transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Ingest accepts a device-reported transaction. Duplicate transaction IDs
// come back as conflicts so retrying devices can stop resending.
func (h *TransactionHandler) Ingest(c *gin.Context) {
	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(&transaction); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	if err := h.transactionService.Ingest(c.Request.Context(), &transaction); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Transaction recorded", transaction)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		utils.BadRequestResponse(c, "Transaction ID is required")
		return
	}

	transaction, err := h.transactionService.GetByTransactionID(c.Request.Context(), transactionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Transaction retrieved", transaction)
}

// List supports optional from/to filters in RFC 3339 format.
func (h *TransactionHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid 'from' timestamp")
			return
		}
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid 'to' timestamp")
			return
		}

		transactions, total, err := h.transactionService.ListByDateRange(c.Request.Context(), from, to, params)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		utils.SuccessResponseWithMeta(c, "Transactions retrieved", transactions, &utils.Meta{
			Pagination: utils.BuildPaginationMeta(params, total),
		})
		return
	}

	transactions, total, err := h.transactionService.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Transactions retrieved", transactions, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}
