package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"careerpath/internal/service"
)

// SkillHandler handles the skill catalog and self-assessment endpoints.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// AssessSkillsRequest carries one or more self-assessed levels.
type AssessSkillsRequest struct {
	Assessments []service.SkillAssessment `json:"assessments" validate:"required,min=1,dive"`
}

// List godoc
// @Summary List the skill catalog
// @Tags skills
// @Produce json
// @Success 200 {array} model.Skill
// @Failure 500 {object} errors.ErrorResponse
// @Router /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.skillService.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, skills)
}

// Ledger godoc
// @Summary List the authenticated user's skill levels
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserSkill
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/skills [get]
func (h *SkillHandler) Ledger(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	ledger, err := h.skillService.Ledger(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, ledger)
}

// Assess godoc
// @Summary Record self-assessed skill levels
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AssessSkillsRequest true "Levels (0-3 or none/beginner/intermediate/advanced)"
// @Success 200 {array} model.UserSkill
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/skills [put]
func (h *SkillHandler) Assess(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req AssessSkillsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ledger, err := h.skillService.Assess(c.Request().Context(), userID, req.Assessments)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, ledger)
}
