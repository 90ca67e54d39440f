package orders

import (
	"log"
	"strings"

	"biovibe-backend/internal/database"
	"biovibe-backend/internal/mailer"
	"biovibe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Sender delivers a built message. Satisfied by *mailer.Mailer.
type Sender interface {
	Send(mailer.Message) error
}

type OrderItemInput struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type CreateOrderRequest struct {
	Title     string `json:"title"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Street         string `json:"street"`
	Street2        string `json:"street2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	ShippingOption string `json:"shippingOption"`

	Items        []OrderItemInput `json:"items"`
	ShippingCost float64          `json:"shippingCost"`
	Notes        string           `json:"notes"`
}

// POST /api/orders (public checkout). Totals are computed server-side; the
// confirmation email is sent once, and a delivery failure does not fail the
// order.
func CreateOrderHandler(from string, sender Sender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		body.FirstName = strings.TrimSpace(body.FirstName)
		body.LastName = strings.TrimSpace(body.LastName)
		body.Email = strings.TrimSpace(body.Email)

		if body.FirstName == "" || body.LastName == "" {
			return fail(c, fiber.StatusBadRequest, "First and last name are required")
		}
		if body.Email == "" || !strings.Contains(body.Email, "@") {
			return fail(c, fiber.StatusBadRequest, "A valid email address is required")
		}
		if len(body.Items) == 0 {
			return fail(c, fiber.StatusBadRequest, "Order must contain at least one item")
		}
		if body.ShippingCost < 0 {
			return fail(c, fiber.StatusBadRequest, "Shipping cost cannot be negative")
		}

		var subtotal float64
		items := make([]models.OrderItem, 0, len(body.Items))
		for _, it := range body.Items {
			name := strings.TrimSpace(it.Name)
			if name == "" || it.Quantity <= 0 || it.Price < 0 {
				return fail(c, fiber.StatusBadRequest, "Invalid order item")
			}
			subtotal += float64(it.Quantity) * it.Price
			items = append(items, models.OrderItem{
				Name:     name,
				Quantity: it.Quantity,
				Price:    it.Price,
			})
		}

		fee := subtotal * 0.05

		order := models.Order{
			PublicID:       uuid.NewString(),
			Title:          strings.TrimSpace(body.Title),
			FirstName:      body.FirstName,
			LastName:       body.LastName,
			Email:          body.Email,
			Phone:          strings.TrimSpace(body.Phone),
			Street:         strings.TrimSpace(body.Street),
			Street2:        strings.TrimSpace(body.Street2),
			City:           strings.TrimSpace(body.City),
			State:          strings.TrimSpace(body.State),
			Zip:            strings.TrimSpace(body.Zip),
			ShippingOption: strings.TrimSpace(body.ShippingOption),
			Items:          items,
			Subtotal:       subtotal,
			ProcessingFee:  fee,
			ShippingCost:   body.ShippingCost,
			Total:          subtotal + fee + body.ShippingCost,
			Notes:          body.Notes,
		}

		if err := database.DB.Create(&order).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not save order")
		}

		msg, err := mailer.ConfirmationMessage(from, &order)
		if err != nil {
			log.Printf("order %s: build confirmation email: %v", order.PublicID, err)
		} else if err := sender.Send(msg); err != nil {
			log.Printf("order %s: send confirmation email: %v", order.PublicID, err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"data":    order,
		})
	}
}

// GET /api/orders
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not list orders")
		}
		return c.JSON(fiber.Map{"success": true, "data": orders})
	}
}

// GET /api/orders/:id
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var order models.Order
		if err := database.DB.Preload("Items").First(&order, "id = ?", c.Params("id")).Error; err != nil {
			return fail(c, fiber.StatusNotFound, "Order not found")
		}
		return c.JSON(fiber.Map{"success": true, "data": order})
	}
}

// POST /api/orders/:id/resend-invoice. The request body is the PDF to
// attach; it is produced by the caller, this endpoint only carries it.
func ResendInvoiceHandler(from string, sender Sender) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var order models.Order
		if err := database.DB.Preload("Items").First(&order, "id = ?", c.Params("id")).Error; err != nil {
			return fail(c, fiber.StatusNotFound, "Order not found")
		}

		pdf := c.Body()
		if len(pdf) == 0 {
			return fail(c, fiber.StatusBadRequest, "Request body must contain the invoice PDF")
		}

		msg, err := mailer.InvoiceResendMessage(from, &order, pdf)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not build invoice email")
		}
		if err := sender.Send(msg); err != nil {
			return fail(c, fiber.StatusInternalServerError, "Could not send invoice email")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}
