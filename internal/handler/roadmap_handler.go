package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"careerpath/internal/model"
	"careerpath/internal/service"
)

// RoadmapHandler handles roadmap display, regeneration and task progress.
type RoadmapHandler struct {
	roadmapService service.RoadmapService
}

// NewRoadmapHandler creates a new roadmap handler.
func NewRoadmapHandler(roadmapService service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

// UpdateTaskStatusRequest is the body of a task status change.
type UpdateTaskStatusRequest struct {
	Status model.TaskStatus `json:"status" validate:"required"`
}

// View godoc
// @Summary Show the authenticated user's roadmap
// @Description Returns the persisted plan grouped by goal and week. A new plan is generated when none exists or the active goals changed.
// @Tags roadmap
// @Produce json
// @Security BearerAuth
// @Success 200 {object} roadmap.Roadmap
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /roadmap [get]
func (h *RoadmapHandler) View(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rm, err := h.roadmapService.View(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, rm)
}

// Regenerate godoc
// @Summary Regenerate the authenticated user's roadmap
// @Description Replaces every task of the user. Progress on the previous plan is discarded.
// @Tags roadmap
// @Produce json
// @Security BearerAuth
// @Success 201 {object} roadmap.Roadmap
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /roadmap/regenerate [post]
func (h *RoadmapHandler) Regenerate(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	rm, err := h.roadmapService.Generate(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, rm)
}

// UpdateTaskStatus godoc
// @Summary Update the status of a roadmap task
// @Description Completing a task recomputes the user's level for the task's skill.
// @Tags roadmap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body UpdateTaskStatusRequest true "Status (pending, in_progress, completed)"
// @Success 200 {object} service.StatusUpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /roadmap/tasks/{id} [patch]
func (h *RoadmapHandler) UpdateTaskStatus(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	taskID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateTaskStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.roadmapService.UpdateTaskStatus(c.Request().Context(), userID, taskID, req.Status)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
