package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"careerpath/internal/service"
)

// QuizHandler handles skill quizzes.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// SubmitQuizRequest maps question ids to the chosen option.
type SubmitQuizRequest struct {
	Answers map[uint]string `json:"answers" validate:"required"`
}

// Questions godoc
// @Summary Get the quiz of a skill
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param skill_id path int true "Skill ID"
// @Success 200 {array} model.QuizQuestion
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /quizzes/{skill_id} [get]
func (h *QuizHandler) Questions(c echo.Context) error {
	skillID, err := uintParam(c, "skill_id")
	if err != nil {
		return err
	}
	questions, err := h.quizService.Questions(c.Request().Context(), skillID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, questions)
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Scores the attempt and sets the user's level for the skill (80% advanced, 50% intermediate, otherwise beginner).
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skill_id path int true "Skill ID"
// @Param request body SubmitQuizRequest true "Answers keyed by question id"
// @Success 201 {object} model.QuizResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /quizzes/{skill_id} [post]
func (h *QuizHandler) Submit(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	skillID, err := uintParam(c, "skill_id")
	if err != nil {
		return err
	}
	var req SubmitQuizRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	result, err := h.quizService.Submit(c.Request().Context(), userID, skillID, req.Answers)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, result)
}

// Results godoc
// @Summary List the authenticated user's quiz results
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.QuizResult
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/quiz-results [get]
func (h *QuizHandler) Results(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	results, err := h.quizService.Results(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, results)
}
