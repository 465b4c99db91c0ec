package handlers

import (
	"parkwise/internal/models"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/utils"
	"parkwise/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SiteHandler struct {
	siteRepo     interfaces.SiteRepository
	locationRepo interfaces.LocationRepository
}

func NewSiteHandler(siteRepo interfaces.SiteRepository, locationRepo interfaces.LocationRepository) *SiteHandler {
	return &SiteHandler{
		siteRepo:     siteRepo,
		locationRepo: locationRepo,
	}
}

func (h *SiteHandler) Create(c *gin.Context) {
	var site models.Site
	if err := c.ShouldBindJSON(&site); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateStruct(&site); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.FieldMap())
		return
	}

	// Parent location must exist
	if _, err := h.locationRepo.GetByID(c.Request.Context(), site.LocationID); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := h.siteRepo.Create(c.Request.Context(), &site); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Site created successfully", site)
}

func (h *SiteHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	sites, total, err := h.siteRepo.List(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Sites retrieved", sites, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}

func (h *SiteHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid site ID")
		return
	}

	site, err := h.siteRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Site retrieved", site)
}

func (h *SiteHandler) GetByLocation(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid location ID")
		return
	}

	sites, err := h.siteRepo.GetByLocation(c.Request.Context(), locationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Sites retrieved", sites)
}

func (h *SiteHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid site ID")
		return
	}

	updates, err := bindUpdates(c, "name", "total_spaces", "available_spaces", "status", "description")
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.siteRepo.Update(c.Request.Context(), id, updates); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Site updated successfully", nil)
}

func (h *SiteHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid site ID")
		return
	}

	if err := h.siteRepo.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Site deleted successfully", nil)
}
