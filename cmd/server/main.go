package main

import (
	"log"
	"strings"

	"biovibe-backend/internal/audit"
	"biovibe-backend/internal/auth"
	"biovibe-backend/internal/catalog"
	"biovibe-backend/internal/config"
	"biovibe-backend/internal/content"
	"biovibe-backend/internal/database"
	"biovibe-backend/internal/mailer"
	"biovibe-backend/internal/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)
	mail := mailer.New(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Get("/content", content.GetContentHandler())
	api.Post("/orders", orders.CreateOrderHandler(mail.From(), mail))

	// Protected admin area
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Product catalog
	protected.Get("/products", catalog.ListProductsHandler())
	protected.Post("/products", catalog.CreateProductHandler())
	protected.Patch("/products/:id", catalog.UpdateProductHandler())
	protected.Delete("/products/:id", catalog.DeleteProductHandler())

	// Orders
	protected.Get("/orders", orders.ListOrdersHandler())
	protected.Get("/orders/:id", orders.GetOrderHandler())
	protected.Post("/orders/:id/resend-invoice", orders.ResendInvoiceHandler(mail.From(), mail))

	// Audit trail
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
