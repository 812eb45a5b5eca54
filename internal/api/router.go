package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/coursebay/course-marketplace/docs"
	"github.com/coursebay/course-marketplace/internal/api/handler"
	"github.com/coursebay/course-marketplace/internal/api/middleware"
	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/service"
	mongodb "github.com/coursebay/course-marketplace/internal/infrastructure/db/mongo"
	"github.com/coursebay/course-marketplace/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each role namespace mounts its own Auth middleware carrying that
// namespace's secret, plus an explicit role requirement, so a route's scope
// is read off the route table rather than inferred from its path.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	adminRepo := mongodb.NewAdminRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)

	adminIssuer := service.NewTokenIssuer(cfg.Auth.AdminSecret, domain.RoleAdmin, cfg.Auth.TokenTTL)
	userIssuer := service.NewTokenIssuer(cfg.Auth.UserSecret, domain.RoleUser, cfg.Auth.TokenTTL)

	adminAccounts := service.NewAccountService(adminRepo, adminIssuer, domain.RoleAdmin, log)
	userAccounts := service.NewAccountService(userRepo, userIssuer, domain.RoleUser, log)
	courses := service.NewCourseService(courseRepo, log)
	purchases := service.NewPurchaseService(userRepo, courseRepo, log)

	adminHandler := handler.NewAdminHandler(adminAccounts, courses)
	userHandler := handler.NewUserHandler(userAccounts, courses, purchases)

	adminAuth := middleware.Auth(cfg.Auth.AdminSecret)
	userAuth := middleware.Auth(cfg.Auth.UserSecret)

	// --- Admin routes ---
	admin := e.Group("/admin")
	admin.POST("/signup", adminHandler.Signup)
	admin.POST("/login", adminHandler.Login)

	adminCourses := admin.Group("/courses", adminAuth, middleware.RequireRole(domain.RoleAdmin))
	adminCourses.POST("", adminHandler.CreateCourse)
	adminCourses.PUT("/:courseId", adminHandler.UpdateCourse)
	adminCourses.GET("", adminHandler.ListCourses)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)

	userScoped := users.Group("", userAuth, middleware.RequireRole(domain.RoleUser))
	userScoped.GET("/courses", userHandler.ListCourses)
	userScoped.POST("/courses/:courseId", userHandler.PurchaseCourse)
	userScoped.GET("/purchasedCourses", userHandler.ListPurchased)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
