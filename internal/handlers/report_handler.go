package handlers

import (
	"time"

	"parkwise/internal/services"
	"parkwise/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	report, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Dashboard retrieved", report)
}

// Revenue defaults to the last 30 days when no range is given.
func (h *ReportHandler) Revenue(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid 'from' timestamp")
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid 'to' timestamp")
			return
		}
		to = parsed
	}

	report, err := h.reportService.Revenue(c.Request.Context(), from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Revenue report retrieved", report)
}

func (h *ReportHandler) Occupancy(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	locations, total, err := h.reportService.Occupancy(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Occupancy retrieved", locations, &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
	})
}
