package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gaon-interior/cmd/api/dto"
	"gaon-interior/cmd/api/services"
)

// @Summary Migrate insight dates
// @Description Run the one-shot date normalization and thumbnail/url backfill over the insights collection. Idempotent; requires confirm=true.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.MigrateDatesRequestDTO true "Confirmation"
// @Success 200 {object} dto.MigrateDatesResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/insights/migrate-dates [post]
func MigrateInsightDatesHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.MigrateDatesRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		if !req.Confirm {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "confirmation required"})
			return
		}

		res, err := svc.MigrateInsightDates(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.MigrateDatesResponseDTO{
			TotalChanged:    res.TotalChanged,
			DateConversions: res.DateConversions,
		})
	}
}
