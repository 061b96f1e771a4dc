package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sajid-dev/bloghub/backend/internal/auth"
	"github.com/sajid-dev/bloghub/backend/internal/handlers"
	"github.com/sajid-dev/bloghub/backend/internal/middleware"
	"github.com/sajid-dev/bloghub/backend/internal/models"
	"github.com/sajid-dev/bloghub/backend/internal/repositories"
	"github.com/sajid-dev/bloghub/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client) {
	e.HTTPErrorHandler = httpErrorHandler

	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Uploaded images are served statically
	e.Static("/uploads", cfg.UploadDir)

	// --- Initialize repositories ---
	mongoDB := mgClient.Database(cfg.MongoDatabase)
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	blogRepo := repositories.NewMongoBlogRepository(mongoDB)
	commentRepo := repositories.NewMongoCommentRepository(mongoDB)

	// --- Per-route middleware ---
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authGate := middleware.JWTAuth(tokenService)
	imageUpload := middleware.FileUpload("image", cfg.UploadDir)
	profileUpload := middleware.FileUpload("profileImage", cfg.UploadDir)

	api := e.Group("/api")

	authHandler := handlers.NewAuthHandler(userRepo, tokenService)
	authHandler.RegisterAuthRoutes(api, profileUpload)
	log.Println("Auth routes configured.")

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api, authGate, profileUpload)
	log.Println("Profile routes configured.")

	blogHandler := handlers.NewBlogHandler(blogRepo, userRepo, cfg.BaseURL)
	blogHandler.RegisterBlogRoutes(api, authGate, imageUpload)
	log.Println("Blog routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, userRepo)
	commentHandler.RegisterCommentRoutes(api, authGate)
	log.Println("Comment routes configured.")

	log.Println("All routes configured.")
}

// httpErrorHandler shapes every failure into the JSON envelope
// {success:false, message}. Unexpected errors are logged server-side and the
// client gets a fixed generic message.
func httpErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again."

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
		if he.Internal != nil {
			c.Logger().Error(he.Internal)
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			c.Logger().Error(err)
		}
		return
	}
	if err := c.JSON(code, echo.Map{"success": false, "message": message}); err != nil {
		c.Logger().Error(err)
	}
}
