package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"shoestore/internal/config"
	"shoestore/internal/http/handlers"
	applog "shoestore/internal/log"
	"shoestore/internal/storage"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := storage.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return len(c.Path()) >= 8 && c.Path()[:8] == "/static/"
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)

	// Chat page
	app.Get("/", deps.PageHandler.Chat)

	// API
	api := app.Group("/api/v1")

	// The chat endpoint is the expensive path; throttle it tighter.
	chatLimiter := limiter.New(limiter.Config{
		Max:        15,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|chat"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.chat.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Post("/chat", chatLimiter, deps.ChatHandler.Message)
	api.Get("/chat/mode", deps.ChatHandler.GetMode)
	api.Post("/chat/mode", deps.ChatHandler.SetMode)

	// Catalog
	api.Get("/products", deps.CatalogHandler.List)
	api.Get("/products/:id", deps.CatalogHandler.Get)
	api.Get("/brands", deps.CatalogHandler.Brands)
	api.Get("/categories", deps.CatalogHandler.Categories)
	api.Get("/availability", deps.CatalogHandler.Availability)

	// Cart
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Post("/cart/items/quantity", deps.CartHandler.SetQuantity)
	api.Post("/cart/items/remove", deps.CartHandler.Remove)
	api.Post("/cart/clear", deps.CartHandler.Clear)

	// Wishlist
	api.Get("/wishlist", deps.WishlistHandler.List)
	api.Post("/wishlist", deps.WishlistHandler.Save)
	api.Post("/wishlist/delete", deps.WishlistHandler.Unsave)

	// Forms
	api.Get("/forms/:kind", deps.FormHandler.Get)
	api.Post("/forms/:kind", deps.FormHandler.Submit)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
