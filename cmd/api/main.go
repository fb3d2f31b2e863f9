package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AndresNazzari/budgetApp/internal/auth"
	"github.com/AndresNazzari/budgetApp/internal/category"
	"github.com/AndresNazzari/budgetApp/internal/config"
	"github.com/AndresNazzari/budgetApp/internal/expense"
	"github.com/AndresNazzari/budgetApp/internal/income"
	"github.com/AndresNazzari/budgetApp/internal/operations"
	"github.com/AndresNazzari/budgetApp/internal/router"
	"github.com/AndresNazzari/budgetApp/internal/user"
)

// maxPoolConns bounds the shared connection pool.
const maxPoolConns = 10

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error parsing database url: %v", err)
	}
	poolCfg.MaxConns = maxPoolConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"errors": []fiber.Map{{"msg": message}},
			})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	secret := []byte(cfg.JWTSecret)

	userRepo := user.NewRepository(pool)
	incomeRepo := income.NewRepository(pool)
	expenseRepo := expense.NewRepository(pool)

	r := &router.Router{
		UserHandler:       user.NewHandler(userRepo, secret),
		CategoryHandler:   category.NewHandler(category.NewRepository(pool)),
		IncomeHandler:     income.NewHandler(incomeRepo),
		ExpenseHandler:    expense.NewHandler(expenseRepo),
		OperationsHandler: operations.NewHandler(incomeRepo, expenseRepo),
		AuthMW:            auth.Middleware(secret),
		AuthLimiter:       router.RateLimitAuth(cfg.AuthRateMax, cfg.AuthRateWindow),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %s %d %s", reqID, c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
