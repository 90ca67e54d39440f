package catalog

import (
	"strings"

	"biovibe-backend/internal/audit"
	"biovibe-backend/internal/auth"
	"biovibe-backend/internal/database"
	"biovibe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// The admin page consumes a {success, data | error} envelope on every
// product endpoint, so these handlers respond with it directly instead of
// going through the app-level error handler.

func okData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"success": true, "data": data})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("name asc").Find(&products).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not list products")
		}
		return okData(c, fiber.StatusOK, products)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductInput
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if msg := validateInput(&body); msg != "" {
			return fail(c, fiber.StatusBadRequest, msg)
		}

		p := models.Product{
			Name:              body.Name,
			Sub:               body.Sub,
			Price:             body.Price,
			CostPrice:         body.CostPrice,
			StockQuantity:     body.StockQuantity,
			LowStockThreshold: body.LowStockThreshold,
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not create product")
		}

		writeProductAudit(c, models.AuditActionCreate, &p, nil, &p)
		return okData(c, fiber.StatusCreated, p)
	}
}

// PATCH /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fail(c, fiber.StatusNotFound, "Product not found")
		}
		before := p

		var body ProductInput
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if msg := validateInput(&body); msg != "" {
			return fail(c, fiber.StatusBadRequest, msg)
		}

		p.Name = body.Name
		p.Sub = body.Sub
		p.Price = body.Price
		p.CostPrice = body.CostPrice
		p.StockQuantity = body.StockQuantity
		p.LowStockThreshold = body.LowStockThreshold

		if err := database.DB.Save(&p).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not update product")
		}

		writeProductAudit(c, models.AuditActionUpdate, &p, &before, &p)
		return okData(c, fiber.StatusOK, p)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fail(c, fiber.StatusNotFound, "Product not found")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not delete product")
		}

		writeProductAudit(c, models.AuditActionDelete, &p, &p, nil)
		return c.JSON(fiber.Map{"success": true})
	}
}

// validateInput normalizes and checks a payload, returning a user-facing
// message on the first violation. Price and cost are validated
// independently; cost above price is allowed.
func validateInput(in *ProductInput) string {
	in.Name = strings.TrimSpace(in.Name)
	in.Sub = strings.TrimSpace(in.Sub)

	switch {
	case in.Name == "":
		return "Product name is required"
	case in.Sub == "":
		return "Product type/subtitle is required"
	case in.Price < 0:
		return "Price cannot be negative"
	case in.CostPrice < 0:
		return "Cost price cannot be negative"
	case in.StockQuantity < 0:
		return "Stock quantity cannot be negative"
	case in.LowStockThreshold < 0:
		return "Low stock threshold cannot be negative"
	}
	return ""
}

func writeProductAudit(c *fiber.Ctx, action models.AuditAction, p *models.Product, before, after any) {
	var userID uint
	var userEmail string
	if v, ok := c.Locals(auth.CtxUserIDKey).(uint); ok {
		userID = v
	}
	if v, ok := c.Locals(auth.CtxUserEmailKey).(string); ok {
		userEmail = v
	}

	// Audit is best-effort; a failed write must not fail the mutation.
	_ = audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserEmail:   userEmail,
		EntityType:  "product",
		EntityID:    p.ID,
		Action:      action,
		Description: string(action) + " product " + p.Name,
		Before:      before,
		After:       after,
	})
}
