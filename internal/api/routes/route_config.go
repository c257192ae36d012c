package routes

import (
	"github.com/Naamee/distance-backend/internal/api/handlers"
	"github.com/Naamee/distance-backend/internal/middleware"
	"github.com/Naamee/distance-backend/pkg/session"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	FridgeHandler handlers.FridgeHandler
	MeetHandler   handlers.MeetHandler
	AlertHandler  handlers.AlertHandler
	MovieHandler  handlers.MovieHandler
	Middleware    middleware.Middleware
	Sessions      session.SessionService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Meet()
	c.Fridge()
	c.Alerts()
	c.Movies()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/logout", c.UserHandler.Logout)
	}
}

func (c *Config) Meet() {
	guard := c.Middleware.AuthMiddleware(c.Sessions)
	c.App.Get("/meet", guard, c.MeetHandler.GetMeetDate)
	c.App.Put("/meet", guard, c.MeetHandler.SetMeetDate)
	c.App.Delete("/meet", guard, c.MeetHandler.ClearMeetDate)
}

func (c *Config) Fridge() {
	guard := c.Middleware.AuthMiddleware(c.Sessions)

	c.App.Get("/fridge", guard, c.FridgeHandler.ListInventory)
	c.App.Post("/fridge", guard, c.FridgeHandler.CreateItem)
	c.App.Put("/fridge/:id", guard, c.FridgeHandler.RenameItem)
	c.App.Get("/fridge/:id/entries", guard, c.FridgeHandler.ListEntries)

	// Ledger movements keep their own top-level path.
	c.App.Post("/fridge_item", guard, c.FridgeHandler.RecordMovement)
}

func (c *Config) Alerts() {
	alerts := c.App.Group("/alerts", c.Middleware.AuthMiddleware(c.Sessions))
	{
		alerts.Get("", c.AlertHandler.ListAlerts)
		alerts.Post("", c.AlertHandler.CreateAlert)
		alerts.Post("/:id/read", c.AlertHandler.MarkAsRead)
	}
}

func (c *Config) Movies() {
	movies := c.App.Group("/movies", c.Middleware.AuthMiddleware(c.Sessions))
	{
		movies.Get("", c.MovieHandler.ListMovies)
		movies.Post("", c.MovieHandler.AddMovie)
		movies.Delete("/:id", c.MovieHandler.DeleteMovie)
	}
}
