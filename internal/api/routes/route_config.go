package routes

import (
	"Stockify-Backend/internal/api/handlers"
	"Stockify-Backend/internal/middleware"
	"Stockify-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	CategoryHandler handlers.CategoryHandler
	LocationHandler handlers.LocationHandler
	ItemHandler     handlers.ItemHandler
	StockHandler    handlers.StockHandler
	UploadHandler   handlers.UploadHandler
	AuditHandler    handlers.AuditHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Categories()
	c.Locations()
	c.Items()
	c.Stocks()
	c.Uploads()
	c.AuditLogs()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/refresh", c.UserHandler.Refresh)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
		user.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.UserHandler.GetUsers)
		user.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))

	categories.Get("/options", c.CategoryHandler.GetCategoryOptions)
	categories.Post("", c.CategoryHandler.CreateCategory)
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategoryDetails)
	categories.Put("/:id", c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.CategoryHandler.DeleteCategory)
}

func (c *Config) Locations() {
	locations := c.App.Group("/api/v1/locations", c.Middleware.AuthMiddleware(c.JWTService))

	locations.Get("/options", c.LocationHandler.GetLocationOptions)
	locations.Post("", c.LocationHandler.CreateLocation)
	locations.Get("", c.LocationHandler.GetLocations)
	locations.Get("/:id", c.LocationHandler.GetLocationDetails)
	locations.Put("/:id", c.LocationHandler.UpdateLocation)
	locations.Delete("/:id", c.LocationHandler.DeleteLocation)
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.JWTService))

	items.Post("", c.ItemHandler.CreateItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:id", c.ItemHandler.GetItemDetails)
	items.Get("/:id/quantity-left", c.ItemHandler.GetQuantityLeft)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)
}

func (c *Config) Stocks() {
	stocks := c.App.Group("/api/v1/stocks", c.Middleware.AuthMiddleware(c.JWTService))

	stocks.Post("", c.StockHandler.CreateStock)
	stocks.Get("", c.StockHandler.GetStocks)
	stocks.Get("/:id", c.StockHandler.GetStockDetails)
	stocks.Put("/:id", c.StockHandler.UpdateStock)
	stocks.Delete("/:id", c.StockHandler.DeleteStock)
}

func (c *Config) Uploads() {
	uploads := c.App.Group("/api/v1/uploads", c.Middleware.AuthMiddleware(c.JWTService))

	uploads.Post("/presign", c.UploadHandler.PresignUpload)
	uploads.Delete("", c.UploadHandler.DeleteObject)
}

func (c *Config) AuditLogs() {
	auditLogs := c.App.Group("/api/v1/audit-logs", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())

	auditLogs.Get("", c.AuditHandler.GetAuditLogs)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
