package content

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/content (public: the storefront reads marketing copy from here).
// There is deliberately no update endpoint yet; the editor UI does not exist.
func GetContentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := GetContent()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Could not load site content",
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    doc,
		})
	}
}
