package config

import (
	"time"

	"github.com/Naamee/distance-backend/internal/api/handlers"
	"github.com/Naamee/distance-backend/internal/api/routes"
	"github.com/Naamee/distance-backend/internal/middleware"
	"github.com/Naamee/distance-backend/internal/utils"
	"github.com/Naamee/distance-backend/pkg/alert"
	"github.com/Naamee/distance-backend/pkg/fridge"
	"github.com/Naamee/distance-backend/pkg/meet"
	"github.com/Naamee/distance-backend/pkg/movie"
	"github.com/Naamee/distance-backend/pkg/session"
	"github.com/Naamee/distance-backend/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	fridgeRepository := fridge.NewFridgeRepository(db)
	meetRepository := meet.NewMeetRepository(db)
	alertRepository := alert.NewAlertRepository(db)
	movieRepository := movie.NewMovieRepository(db)

	// Service
	sessionService := session.NewSessionService()
	userService := user.NewUserService(userRepository)
	fridgeService := fridge.NewFridgeService(fridgeRepository)
	meetService := meet.NewMeetService(meetRepository)
	alertService := alert.NewAlertService(alertRepository)
	movieService := movie.NewMovieService(movieRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, sessionService, validator)
	fridgeHandler := handlers.NewFridgeHandler(fridgeService, validator)
	meetHandler := handlers.NewMeetHandler(meetService, validator)
	alertHandler := handlers.NewAlertHandler(alertService, validator)
	movieHandler := handlers.NewMovieHandler(movieService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		FridgeHandler: fridgeHandler,
		MeetHandler:   meetHandler,
		AlertHandler:  alertHandler,
		MovieHandler:  movieHandler,
		Middleware:    middlewares,
		Sessions:      sessionService,
	}
	routesConfig.Setup()
	return app, nil
}
