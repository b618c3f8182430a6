package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"careerpath/internal/auth"
	"careerpath/internal/errors"
	"careerpath/internal/model"
	"careerpath/internal/roadmap"
	"careerpath/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// newContext builds a request context; userID 0 means unauthenticated.
func newContext(method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set(auth.ContextKey, &jwt.Token{Claims: &auth.Claims{UserID: userID}})
	}
	return c, rec
}

func assertHTTPError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, status, he.Code)
	if code != "" {
		resp, ok := he.Message.(errors.ErrorResponse)
		require.True(t, ok, "message should be an ErrorResponse")
		assert.Equal(t, code, resp.Code)
	}
}

// MockRoadmapService is a mock implementation of RoadmapService.
type MockRoadmapService struct {
	mock.Mock
}

func (m *MockRoadmapService) Generate(ctx context.Context, userID uint) (*roadmap.Roadmap, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roadmap.Roadmap), args.Error(1)
}

func (m *MockRoadmapService) View(ctx context.Context, userID uint) (*roadmap.Roadmap, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roadmap.Roadmap), args.Error(1)
}

func (m *MockRoadmapService) UpdateTaskStatus(ctx context.Context, userID uint, taskID uuid.UUID, status model.TaskStatus) (*service.StatusUpdateResult, error) {
	args := m.Called(ctx, userID, taskID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatusUpdateResult), args.Error(1)
}

// MockGoalService is a mock implementation of GoalService.
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) List(ctx context.Context) ([]model.CareerGoal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.CareerGoal), args.Error(1)
}

func (m *MockGoalService) UserGoals(ctx context.Context, userID uint) ([]model.UserCareerGoal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.UserCareerGoal), args.Error(1)
}

func (m *MockGoalService) AddGoal(ctx context.Context, userID, goalID uint, targetDate *time.Time) (*model.UserCareerGoal, error) {
	args := m.Called(ctx, userID, goalID, targetDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserCareerGoal), args.Error(1)
}

func (m *MockGoalService) UpdateGoalStatus(ctx context.Context, userID uint, id uuid.UUID, status model.GoalStatus) error {
	return m.Called(ctx, userID, id, status).Error(0)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, userID uint, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockGoalService) Recommend(ctx context.Context, userID uint) ([]service.GoalRecommendation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]service.GoalRecommendation), args.Error(1)
}
