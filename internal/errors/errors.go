package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrSkillNotFound is returned when a skill is not in the catalog.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrGoalNotFound is returned when a career goal is not in the catalog.
	ErrGoalNotFound = errors.New("career goal not found")
	// ErrUserGoalNotFound is returned when a user goal does not exist or belongs to someone else.
	ErrUserGoalNotFound = errors.New("goal not found")
	// ErrGoalAlreadyAdded is returned when the user already holds the goal as active.
	ErrGoalAlreadyAdded = errors.New("goal already added")
	// ErrInvalidGoalStatus is returned for an unknown goal status.
	ErrInvalidGoalStatus = errors.New("invalid goal status")
	// ErrNoActiveGoals is returned when a roadmap is requested without any active goal.
	ErrNoActiveGoals = errors.New("no active career goals")
	// ErrEmptyPlan is returned when every active goal has an empty skill gap set.
	ErrEmptyPlan = errors.New("no skills to plan for")
	// ErrInvalidStatus is returned for an unknown task status.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrTaskNotFound is returned when a task does not exist or is not owned by the caller.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidSkillLevel is returned when a level is outside 0..3.
	ErrInvalidSkillLevel = errors.New("invalid skill level")
	// ErrNoQuizQuestions is returned when a skill has no quiz.
	ErrNoQuizQuestions = errors.New("no quiz questions for skill")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrSkillNotFound, http.StatusNotFound, "SKILL_NOT_FOUND"},
	{ErrGoalNotFound, http.StatusBadRequest, "GOAL_NOT_FOUND"},
	{ErrUserGoalNotFound, http.StatusNotFound, "USER_GOAL_NOT_FOUND"},
	{ErrGoalAlreadyAdded, http.StatusConflict, "GOAL_ALREADY_ADDED"},
	{ErrInvalidGoalStatus, http.StatusBadRequest, "INVALID_GOAL_STATUS"},
	{ErrNoActiveGoals, http.StatusBadRequest, "NO_ACTIVE_GOALS"},
	{ErrEmptyPlan, http.StatusBadRequest, "EMPTY_PLAN"},
	{ErrInvalidStatus, http.StatusBadRequest, "INVALID_STATUS"},
	{ErrTaskNotFound, http.StatusNotFound, "TASK_NOT_FOUND"},
	{ErrInvalidSkillLevel, http.StatusBadRequest, "INVALID_SKILL_LEVEL"},
	{ErrNoQuizQuestions, http.StatusNotFound, "QUIZ_NOT_FOUND"},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched with errors.Is;
// anything unknown becomes a generic 500 so persistence details never leak.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}

