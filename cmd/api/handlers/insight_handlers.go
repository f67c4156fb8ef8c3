package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"gaon-interior/cmd/api/dto"
	"gaon-interior/cmd/api/services"
)

// @Summary List insights
// @Description List insight posts sorted by date desc
// @Tags insights
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.PaginationInsightDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/insights [get]
func ListInsightsHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

		resp, err := svc.List(c.Request.Context(), services.ListInsightsInput{
			Page:     page,
			PageSize: pageSize,
			Category: c.Query("category"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Get an insight
// @Tags insights
// @Produce json
// @Param id path string true "Insight ID"
// @Success 200 {object} dto.InsightDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/insights/{id} [get]
func GetInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "insight not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Create an insight
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.UpsertInsightRequestDTO true "Insight"
// @Success 200 {object} dto.InsightDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/insights [post]
func CreateInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpsertInsightRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		out, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Update an insight
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Insight ID"
// @Param body body dto.UpsertInsightRequestDTO true "Insight"
// @Success 200 {object} dto.InsightDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/insights/{id} [put]
func UpdateInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpsertInsightRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		out, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "insight not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Delete an insight
// @Tags admin
// @Produce json
// @Param id path string true "Insight ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/insights/{id} [delete]
func DeleteInsightHandler(svc *services.InsightService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "insight deleted successfully"})
	}
}
