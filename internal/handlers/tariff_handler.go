package handlers

import (
	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TariffHandler struct {
	tariffRepo interfaces.TariffRepository
}

func NewTariffHandler(tariffRepo interfaces.TariffRepository) *TariffHandler {
	return &TariffHandler{
		tariffRepo: tariffRepo,
	}
}

// tariffCreateRequest mirrors models.Tariff with grace_time as a pointer so
// an omitted grace period gets the default while an explicit zero stays zero.
type tariffCreateRequest struct {
	Name              string                  `json:"name"`
	Status            string                  `json:"status"`
	GraceTime         *int                    `json:"grace_time"`
	LocationID        primitive.ObjectID      `json:"location_id"`
	SiteID            primitive.ObjectID      `json:"site_id"`
	DeviceID          primitive.ObjectID      `json:"device_id"`
	VehicleCategoryID primitive.ObjectID      `json:"vehicle_category_id"`
	Intervals         []models.TariffInterval `json:"time_intervals"`
}

func (h *TariffHandler) Create(c *gin.Context) {
	var request tariffCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	graceTime := utils.DefaultGraceTimeMinutes
	if request.GraceTime != nil {
		graceTime = *request.GraceTime
	}
	tariff := models.Tariff{
		Name:              request.Name,
		Status:            request.Status,
		GraceTime:         graceTime,
		LocationID:        request.LocationID,
		SiteID:            request.SiteID,
		DeviceID:          request.DeviceID,
		VehicleCategoryID: request.VehicleCategoryID,
		Intervals:         request.Intervals,
	}
	if errs := validators.ValidateTariff(&tariff); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	if err := h.tariffRepo.Create(c.Request.Context(), &tariff); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Tariff created successfully", tariff)
}

func (h *TariffHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tariffs, total, err := h.tariffRepo.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Tariffs retrieved", tariffs, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}

func (h *TariffHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tariff ID")
		return
	}

	tariff, err := h.tariffRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Tariff retrieved", tariff)
}

// Update replaces the whole tariff definition rather than patching single
// fields: intervals form one pricing table and are validated as a unit.
func (h *TariffHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tariff ID")
		return
	}

	var tariff models.Tariff
	if err := c.ShouldBindJSON(&tariff); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateTariff(&tariff); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	updates := map[string]interface{}{
		"name":       tariff.Name,
		"status":     tariff.Status,
		"grace_time": tariff.GraceTime,
		"intervals":  tariff.Intervals,
	}
	if err := h.tariffRepo.Update(c.Request.Context(), id, updates); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Tariff updated successfully", nil)
}

func (h *TariffHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tariff ID")
		return
	}

	if err := h.tariffRepo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Tariff deleted successfully", nil)
}
