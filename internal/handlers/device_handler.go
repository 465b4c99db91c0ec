package handlers

import (
	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/services"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeviceHandler struct {
	deviceRepo interfaces.DeviceRepository
	siteRepo   interfaces.SiteRepository
	catalog    services.CatalogService
}

func NewDeviceHandler(deviceRepo interfaces.DeviceRepository, siteRepo interfaces.SiteRepository, catalog services.CatalogService) *DeviceHandler {
	return &DeviceHandler{
		deviceRepo: deviceRepo,
		siteRepo:   siteRepo,
		catalog:    catalog,
	}
}

func (h *DeviceHandler) Create(c *gin.Context) {
	var device models.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(&device); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	if _, err := h.siteRepo.GetByID(c.Request.Context(), device.SiteID); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := h.deviceRepo.Create(c.Request.Context(), &device); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Device created successfully", device)
}

func (h *DeviceHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	devices, total, err := h.deviceRepo.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Devices retrieved", devices, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}

func (h *DeviceHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid device ID")
		return
	}

	device, err := h.deviceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Device retrieved", device)
}

// GetConfig serves the bootstrap bundle a gate device pulls on startup,
// addressed by device code rather than ObjectID because that is all the
// firmware knows about itself.
func (h *DeviceHandler) GetConfig(c *gin.Context) {
	deviceCode := c.Param("code")
	if deviceCode == "" {
		utils.BadRequestResponse(c, "Device code is required")
		return
	}

	config, err := h.catalog.GetDeviceConfig(c.Request.Context(), deviceCode)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Device configuration retrieved", config)
}

func (h *DeviceHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid device ID")
		return
	}

	updates, err := bindUpdates(c, "device_type", "upi_id", "status", "printer_header", "printer_footer")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.deviceRepo.Update(c.Request.Context(), id, updates); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Device updated successfully", nil)
}

func (h *DeviceHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid device ID")
		return
	}

	if err := h.deviceRepo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Device deleted successfully", nil)
}
