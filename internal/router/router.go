package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"careerpath/internal/auth"
	"careerpath/internal/config"
	"careerpath/internal/errors"
	"careerpath/internal/handler"
	"careerpath/internal/observability"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	skillHandler *handler.SkillHandler,
	goalHandler *handler.GoalHandler,
	resourceHandler *handler.ResourceHandler,
	roadmapHandler *handler.RoadmapHandler,
	quizHandler *handler.QuizHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(observability.EchoMiddleware())

	// Add validator
	e.Validator = &CustomValidator{validator: newValidator()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/skills", skillHandler.List)
	api.GET("/goals", goalHandler.List)
	api.GET("/resources", resourceHandler.List)

	// Secured routes (require JWT authentication)
	secured := api.Group("", JWTMiddleware(cfg.JWTSecret))

	secured.GET("/me", userHandler.Me)

	secured.GET("/me/skills", skillHandler.Ledger)
	secured.PUT("/me/skills", skillHandler.Assess)

	secured.GET("/me/goals", goalHandler.UserGoals)
	secured.POST("/me/goals", goalHandler.Add)
	secured.GET("/me/goals/recommendations", goalHandler.Recommendations)
	secured.PATCH("/me/goals/:id", goalHandler.UpdateStatus)
	secured.DELETE("/me/goals/:id", goalHandler.Delete)

	// Roadmap routes
	secured.GET("/roadmap", roadmapHandler.View)
	secured.POST("/roadmap/regenerate", roadmapHandler.Regenerate)
	secured.PATCH("/roadmap/tasks/:id", roadmapHandler.UpdateTaskStatus)

	// Quiz routes
	secured.GET("/quizzes/:skill_id", quizHandler.Questions)
	secured.POST("/quizzes/:skill_id", quizHandler.Submit)
	secured.GET("/me/quiz-results", quizHandler.Results)
}

// JWTMiddleware accepts "Authorization: Bearer <access token>" signed with secret.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		SigningMethod: "HS256",
		ContextKey:    auth.ContextKey,
		NewClaimsFunc: auth.NewClaims,
		TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ",
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid or missing token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
