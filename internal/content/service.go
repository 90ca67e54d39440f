package content

import (
	"biovibe-backend/internal/database"
	"biovibe-backend/internal/models"

	"gorm.io/gorm/clause"
)

// GetContent returns the single site-content document, creating it with the
// schema defaults on first access. The insert is conflict-free on the
// singleton key, so concurrent first calls all converge on one row instead
// of racing a read-then-create. Errors propagate unmodified; this function
// never updates an existing document.
func GetContent() (*models.SiteContent, error) {
	doc := Defaults()
	err := database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "singleton_key"}},
			DoNothing: true,
		}).
		Create(doc).Error
	if err != nil {
		return nil, err
	}

	var out models.SiteContent
	if err := database.DB.First(&out, "singleton_key = ?", models.SiteContentKey).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
