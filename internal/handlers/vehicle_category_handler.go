package handlers

import (
	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleCategoryHandler struct {
	categoryRepo interfaces.VehicleCategoryRepository
}

func NewVehicleCategoryHandler(categoryRepo interfaces.VehicleCategoryRepository) *VehicleCategoryHandler {
	return &VehicleCategoryHandler{
		categoryRepo: categoryRepo,
	}
}

func (h *VehicleCategoryHandler) Create(c *gin.Context) {
	var category models.VehicleCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateVehicleCategory(&category); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	if err := h.categoryRepo.Create(c.Request.Context(), &category); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle category created successfully", category)
}

func (h *VehicleCategoryHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	categories, total, err := h.categoryRepo.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicle categories retrieved", categories, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}

func (h *VehicleCategoryHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle category ID")
		return
	}

	category, err := h.categoryRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle category retrieved", category)
}

func (h *VehicleCategoryHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle category ID")
		return
	}

	updates, err := bindUpdates(c, "name", "description", "is_monthly_pass", "amount", "status")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.categoryRepo.Update(c.Request.Context(), id, updates); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle category updated successfully", nil)
}

func (h *VehicleCategoryHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle category ID")
		return
	}

	if err := h.categoryRepo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle category deleted successfully", nil)
}
