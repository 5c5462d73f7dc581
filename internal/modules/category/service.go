package category

import (
	"strconv"

	"github.com/sevenxleaks/core/catalog"
	"github.com/sevenxleaks/core/internal/models"
	"gorm.io/gorm"
)

// Service derives the category facet list from free-tier content.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns the distinct non-empty category values of free-tier items in
// database-fetch order, numbered 1..N.
func (s *Service) List() ([]catalog.CategoryFacet, error) {
	var values []string
	err := s.db.Model(&models.ContentModel{}).
		Distinct("category").
		Where("tier = ? AND category IS NOT NULL AND category <> ''", models.TierFree).
		Pluck("category", &values).Error
	if err != nil {
		return nil, err
	}

	facets := make([]catalog.CategoryFacet, len(values))
	for i, v := range values {
		facets[i] = catalog.CategoryFacet{
			ID:       strconv.Itoa(i + 1),
			Name:     v,
			Category: v,
		}
	}
	return facets, nil
}
