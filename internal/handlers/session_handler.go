package handlers

import (
	"parkwise/internal/services"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService services.SessionService
}

func NewSessionHandler(sessionService services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// VehicleEntry registers a vehicle entering the facility. A repeated
// transaction ID is a conflict: the gate already reported this entry.
func (h *SessionHandler) VehicleEntry(c *gin.Context) {
	var request services.VehicleEntryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	entry, err := h.sessionService.RegisterEntry(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle entry recorded", entry)
}

// VehicleExit finalizes a parking session and returns the fee assessment.
func (h *SessionHandler) VehicleExit(c *gin.Context) {
	var request services.VehicleExitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	result, err := h.sessionService.RegisterExit(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle exit recorded", result)
}

func (h *SessionHandler) Get(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		utils.BadRequestResponse(c, "Transaction ID is required")
		return
	}

	entry, err := h.sessionService.GetByTransactionID(c.Request.Context(), transactionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Session retrieved", entry)
}

func (h *SessionHandler) ListActive(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	entries, total, err := h.sessionService.ListActive(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Active sessions retrieved", entries, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}

func (h *SessionHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	entries, total, err := h.sessionService.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Sessions retrieved", entries, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}
