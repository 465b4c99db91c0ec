package handlers

import (
	"errors"
	"net/http"

	"parkwise/internal/pricing"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/services"
	"parkwise/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service and repository errors onto the API error
// envelope. Anything unrecognized is a 500 with the detail kept out of the
// response body.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		utils.NotFoundResponse(c, "Record")
	case errors.Is(err, interfaces.ErrDuplicate):
		utils.ConflictResponse(c, "Record already exists")
	case errors.Is(err, services.ErrAlreadyExited):
		utils.ConflictResponse(c, "Vehicle already exited")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c)
	case errors.Is(err, services.ErrInvalidQRCode):
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_QR_CODE", "QR code does not match this session")
	case errors.Is(err, services.ErrInactiveRecord):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "RECORD_INACTIVE", "Record is not active")
	case errors.Is(err, pricing.ErrTariffNotFound):
		utils.NotFoundResponse(c, "Tariff")
	case errors.Is(err, pricing.ErrExitBeforeEntry):
		utils.BadRequestResponse(c, "Exit time is before entry time")
	case errors.Is(err, pricing.ErrAmbiguousTariff):
		utils.ConflictResponse(c, "Multiple tariffs match the requested scope")
	default:
		utils.InternalServerErrorResponse(c)
	}
}
