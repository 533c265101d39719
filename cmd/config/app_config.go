package config

import (
	"Stockify-Backend/internal/api/handlers"
	"Stockify-Backend/internal/api/routes"
	"Stockify-Backend/internal/middleware"
	"Stockify-Backend/internal/utils"
	"Stockify-Backend/internal/utils/storage"
	"Stockify-Backend/pkg/audit"
	"Stockify-Backend/pkg/category"
	"Stockify-Backend/pkg/item"
	"Stockify-Backend/pkg/jwt"
	"Stockify-Backend/pkg/location"
	"Stockify-Backend/pkg/session"
	"Stockify-Backend/pkg/stock"
	"Stockify-Backend/pkg/user"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
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

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	sessionRepository := session.NewSessionRepository(db)
	if err := sessionRepository.DeleteExpiredSessions(context.Background()); err != nil {
		log.Errorf("failed to purge expired sessions: %v", err)
	}
	auditRepository := audit.NewAuditRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	locationRepository := location.NewLocationRepository(db)
	itemRepository := item.NewItemRepository(db)
	stockRepository := stock.NewStockRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	auditService := audit.NewAuditService(auditRepository)
	userService := user.NewUserService(
		userRepository,
		sessionRepository,
		auditRepository,
		jwtService,
	)
	categoryService := category.NewCategoryService(categoryRepository, auditService)
	locationService := location.NewLocationService(locationRepository, auditService, s3)
	itemService := item.NewItemService(
		itemRepository,
		categoryRepository,
		auditService,
		s3,
	)
	stockService := stock.NewStockService(stockRepository, auditService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	stockHandler := handlers.NewStockHandler(stockService, validator)
	uploadHandler := handlers.NewUploadHandler(s3)
	auditHandler := handlers.NewAuditHandler(auditService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		CategoryHandler: categoryHandler,
		LocationHandler: locationHandler,
		ItemHandler:     itemHandler,
		StockHandler:    stockHandler,
		UploadHandler:   uploadHandler,
		AuditHandler:    auditHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
