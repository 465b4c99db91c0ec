package handlers

import (
	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OvernightPolicyHandler struct {
	overnightRepo interfaces.OvernightPolicyRepository
	categoryRepo  interfaces.VehicleCategoryRepository
}

func NewOvernightPolicyHandler(overnightRepo interfaces.OvernightPolicyRepository, categoryRepo interfaces.VehicleCategoryRepository) *OvernightPolicyHandler {
	return &OvernightPolicyHandler{
		overnightRepo: overnightRepo,
		categoryRepo:  categoryRepo,
	}
}

func (h *OvernightPolicyHandler) Create(c *gin.Context) {
	var policy models.OvernightPolicy
	if err := c.ShouldBindJSON(&policy); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateOvernightPolicy(&policy); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	if _, err := h.categoryRepo.GetByID(c.Request.Context(), policy.VehicleCategoryID); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := h.overnightRepo.Create(c.Request.Context(), &policy); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Overnight policy created successfully", policy)
}

func (h *OvernightPolicyHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	policies, total, err := h.overnightRepo.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Overnight policies retrieved", policies, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}

func (h *OvernightPolicyHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid overnight policy ID")
		return
	}

	policy, err := h.overnightRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Overnight policy retrieved", policy)
}

func (h *OvernightPolicyHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid overnight policy ID")
		return
	}

	updates, err := bindUpdates(c, "amount", "status")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.overnightRepo.Update(c.Request.Context(), id, updates); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Overnight policy updated successfully", nil)
}

func (h *OvernightPolicyHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid overnight policy ID")
		return
	}

	if err := h.overnightRepo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Overnight policy deleted successfully", nil)
}
