package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"careerpath/docs" // swagger docs
	"careerpath/internal/auth"
	"careerpath/internal/cache"
	"careerpath/internal/catalog"
	"careerpath/internal/config"
	"careerpath/internal/db"
	"careerpath/internal/handler"
	"careerpath/internal/logger"
	"careerpath/internal/observability"
	"careerpath/internal/repository"
	"careerpath/internal/roadmap"
	"careerpath/internal/router"
	"careerpath/internal/service"
)

// @title Career Path API
// @version 1.0
// @description Skill tracking, career goals and personalised learning roadmaps.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.OTelServiceName,
		Version:     docs.SwaggerInfo.Version,
	})

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal("database init", "driver", cfg.DBDriver, "error", err)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn("drop tables", "error", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("auto-migrate", "error", err)
	}

	if cfg.SeedOnStart {
		c, err := catalog.Default()
		if err != nil {
			log.Fatal("load catalog", "error", err)
		}
		if _, err := catalog.Seed(ctx, gormDB, c, log); err != nil {
			log.Fatal("seed catalog", "error", err)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn("redis unavailable, running without cache", "addr", cfg.RedisAddr, "error", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	goalRepo := repository.NewGoalRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)
	roadmapRepo := repository.NewRoadmapRepository(gormDB)
	quizRepo := repository.NewQuizRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	planner := roadmap.NewPlanner(roadmap.NewRandomPhraser(cfg.PlanSeed))
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	skillService := service.NewSkillService(skillRepo)
	goalService := service.NewGoalService(goalRepo, skillRepo)
	catalogService := service.NewCatalogService(resourceRepo)
	roadmapService := service.NewRoadmapService(skillRepo, goalRepo, resourceRepo, roadmapRepo, planner, log)
	quizService := service.NewQuizService(quizRepo, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(
		e,
		cfg,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewSkillHandler(skillService),
		handler.NewGoalHandler(goalService),
		handler.NewResourceHandler(catalogService),
		handler.NewRoadmapHandler(roadmapService),
		handler.NewQuizHandler(quizService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Info("swagger documentation available", "url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html")

	addr := ":" + cfg.ServerPort
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", "error", err)
		}
	}()
	log.Info("server started", "addr", addr, "db_driver", cfg.DBDriver)

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracer shutdown", "error", err)
	}
}
