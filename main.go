package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/jiruejeta/job-portal/bootstrap"
	"github.com/jiruejeta/job-portal/config"
	"github.com/jiruejeta/job-portal/database"
	"github.com/jiruejeta/job-portal/internal/controllers"
	"github.com/jiruejeta/job-portal/internal/middleware"
	"github.com/jiruejeta/job-portal/internal/repository"
	"github.com/jiruejeta/job-portal/internal/routes"
	"github.com/jiruejeta/job-portal/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	applicationService := services.NewApplicationService(appRepo, jobRepo, userRepo, empRepo)
	employeeService := services.NewEmployeeService(empRepo, jobRepo)
	userService := services.NewUserService(userRepo)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, routes.Deps{
		Auth:         controllers.NewAuthController(authService),
		Jobs:         controllers.NewJobController(jobRepo),
		Applications: controllers.NewApplicationController(applicationService),
		Employees:    controllers.NewEmployeeController(employeeService),
		Users:        controllers.NewUserController(userService),
		Protect:      middleware.Protect(cfg.JWTSecret, userRepo),
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
