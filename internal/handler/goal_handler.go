package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"careerpath/internal/errors"
	"careerpath/internal/model"
	"careerpath/internal/service"
)

const dateLayout = "2006-01-02"

// GoalHandler handles career goal endpoints.
type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// AddGoalRequest adds a catalog goal to the user's goals.
type AddGoalRequest struct {
	CareerGoalID uint   `json:"career_goal_id" validate:"required"`
	TargetDate   string `json:"target_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateGoalStatusRequest changes a user goal's status.
type UpdateGoalStatusRequest struct {
	Status model.GoalStatus `json:"status" validate:"required"`
}

// List godoc
// @Summary List the career goal catalog
// @Tags goals
// @Produce json
// @Success 200 {array} model.CareerGoal
// @Failure 500 {object} errors.ErrorResponse
// @Router /goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	goals, err := h.goalService.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, goals)
}

// UserGoals godoc
// @Summary List the authenticated user's goals
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserCareerGoal
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/goals [get]
func (h *GoalHandler) UserGoals(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	goals, err := h.goalService.UserGoals(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, goals)
}

// Add godoc
// @Summary Add a career goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddGoalRequest true "Goal"
// @Success 201 {object} model.UserCareerGoal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/goals [post]
func (h *GoalHandler) Add(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req AddGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var target *time.Time
	if req.TargetDate != "" {
		parsed, err := time.Parse(dateLayout, req.TargetDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid target_date",
				Code:  "VALIDATION_ERROR",
			})
		}
		target = &parsed
	}

	goal, err := h.goalService.AddGoal(c.Request().Context(), userID, req.CareerGoalID, target)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// UpdateStatus godoc
// @Summary Change the status of one of the user's goals
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User goal ID"
// @Param request body UpdateGoalStatusRequest true "Status (active, completed, abandoned)"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/goals/{id} [patch]
func (h *GoalHandler) UpdateStatus(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateGoalStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.goalService.UpdateGoalStatus(c.Request().Context(), userID, id, req.Status); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary Remove one of the user's goals
// @Tags goals
// @Security BearerAuth
// @Param id path string true "User goal ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/goals/{id} [delete]
func (h *GoalHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.goalService.DeleteGoal(c.Request().Context(), userID, id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Recommendations godoc
// @Summary Recommend career goals from the user's skills
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.GoalRecommendation
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/goals/recommendations [get]
func (h *GoalHandler) Recommendations(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	recs, err := h.goalService.Recommend(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, recs)
}
