package audit

import (
	"strconv"

	"biovibe-backend/internal/database"
	"biovibe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=product&entity_id=1&limit=50
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if entityType := c.Query("entity_type"); entityType != "" {
			dbq = dbq.Where("entity_type = ?", entityType)
		}
		if entityIDStr := c.Query("entity_id"); entityIDStr != "" {
			if id, err := strconv.ParseUint(entityIDStr, 10, 64); err == nil {
				dbq = dbq.Where("entity_id = ?", id)
			}
		}

		limit := 100
		if limStr := c.Query("limit"); limStr != "" {
			if v, err := strconv.Atoi(limStr); err == nil && v > 0 && v <= 500 {
				limit = v
			}
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list audit logs")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data":    logs,
		})
	}
}
