package handlers

import (
	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LocationHandler struct {
	locationRepo interfaces.LocationRepository
}

func NewLocationHandler(locationRepo interfaces.LocationRepository) *LocationHandler {
	return &LocationHandler{
		locationRepo: locationRepo,
	}
}

func (h *LocationHandler) Create(c *gin.Context) {
	var location models.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(&location); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	if err := h.locationRepo.Create(c.Request.Context(), &location); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Location created successfully", location)
}

func (h *LocationHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	locations, total, err := h.locationRepo.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Locations retrieved", locations, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}

func (h *LocationHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID")
		return
	}

	location, err := h.locationRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Location retrieved", location)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID")
		return
	}

	updates, err := bindUpdates(c, "name", "address", "city", "state", "country", "postal_code", "total_spaces", "available_spaces", "status")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.locationRepo.Update(c.Request.Context(), id, updates); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Location updated successfully", nil)
}

func (h *LocationHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID")
		return
	}

	if err := h.locationRepo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Location deleted successfully", nil)
}
