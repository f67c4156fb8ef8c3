package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"gaon-interior/cmd/api/dto"
	"gaon-interior/cmd/api/services"
)

// @Summary List projects
// @Description List portfolio projects in display order
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/projects [get]
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/projects/{id} [get]
func GetProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Create a project
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.UpsertProjectRequestDTO true "Project"
// @Success 200 {object} dto.ProjectDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/projects [post]
func CreateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpsertProjectRequestDTO
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

// @Summary Update a project
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param body body dto.UpsertProjectRequestDTO true "Project"
// @Success 200 {object} dto.ProjectDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/projects/{id} [put]
func UpdateProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpsertProjectRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		out, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Delete a project
// @Tags admin
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/projects/{id} [delete]
func DeleteProjectHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "project deleted successfully"})
	}
}

// @Summary Reorder projects
// @Description Persist the drag-to-reorder result; array order becomes display order
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.ReorderProjectsRequestDTO true "Ordered project IDs"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/project-order [put]
func ReorderProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ReorderProjectsRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		if err := svc.Reorder(c.Request.Context(), req.IDs); err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "projects reordered successfully"})
	}
}
