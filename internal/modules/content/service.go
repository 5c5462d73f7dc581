package content

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sevenxleaks/core/internal/models"
	"github.com/sevenxleaks/core/internal/pkg/pagination"
	"gorm.io/gorm"
)

var errSlugTaken = errors.New("slug already exists in this tier")

// Service handles catalog content business logic for all tiers.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Search returns one filtered, sorted page of a tier plus the page count.
func (s *Service) Search(tier string, sq SearchQuery, pq pagination.Query) ([]models.ContentModel, int, error) {
	tx := s.db.Model(&models.ContentModel{}).Where("tier = ?", tier)

	if search := strings.TrimSpace(sq.Search); search != "" {
		tx = tx.Where("name LIKE ?", "%"+search+"%")
	}
	if sq.Category != "" {
		tx = tx.Where("category = ?", sq.Category)
	}
	if month, ok := parseMonth(sq.Month); ok {
		tx = tx.Where("MONTH(post_date) = ?", month)
	}

	order := "ASC"
	if strings.EqualFold(sq.SortOrder, "DESC") {
		order = "DESC"
	}
	// postDate is the only supported sort key.
	tx = tx.Order("post_date " + order)

	var rows []models.ContentModel
	totalPages, err := pagination.Paginate(tx, pq, &rows)
	return rows, totalPages, err
}

// GetBySlug fetches one item by slug within a tier; nil when absent.
func (s *Service) GetBySlug(tier, slug string) (*models.ContentModel, error) {
	var row models.ContentModel
	err := s.db.Where("tier = ? AND slug = ?", tier, slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts a new item in the given tier.
func (s *Service) Create(tier string, dto *CreateContentDTO) (*models.ContentModel, error) {
	postDate, err := parsePostDate(dto.PostDate)
	if err != nil {
		return nil, fmt.Errorf("invalid postDate: %w", err)
	}

	var count int64
	s.db.Model(&models.ContentModel{}).
		Where("tier = ? AND slug = ?", tier, dto.Slug).Count(&count)
	if count > 0 {
		return nil, errSlugTaken
	}

	row := models.ContentModel{
		Tier:                 tier,
		Slug:                 dto.Slug,
		Name:                 dto.Name,
		Category:             dto.Category,
		PostDate:             postDate,
		Thumbnail:            dto.Thumbnail,
		LinkMega:             dto.LinkMega,
		LinkPixeldrain:       dto.LinkPixeldrain,
		LinkGofile:           dto.LinkGofile,
		LinkMegaMirror:       dto.LinkMegaMirror,
		LinkPixeldrainMirror: dto.LinkPixeldrainMirror,
		LinkGofileMirror:     dto.LinkGofileMirror,
	}
	return &row, s.db.Create(&row).Error
}

// Update applies the non-nil fields of the DTO; nil when the id is unknown.
func (s *Service) Update(tier, id string, dto *UpdateContentDTO) (*models.ContentModel, error) {
	var row models.ContentModel
	if err := s.db.Where("tier = ? AND id = ?", tier, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("slug", dto.Slug)
	set("name", dto.Name)
	set("category", dto.Category)
	set("thumbnail", dto.Thumbnail)
	set("link_mega", dto.LinkMega)
	set("link_pixeldrain", dto.LinkPixeldrain)
	set("link_gofile", dto.LinkGofile)
	set("link_mega_mirror", dto.LinkMegaMirror)
	set("link_pixeldrain_mirror", dto.LinkPixeldrainMirror)
	set("link_gofile_mirror", dto.LinkGofileMirror)
	if dto.PostDate != nil {
		postDate, err := parsePostDate(*dto.PostDate)
		if err != nil {
			return nil, fmt.Errorf("invalid postDate: %w", err)
		}
		updates["post_date"] = postDate
	}

	if err := s.db.Model(&row).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete soft-deletes an item by id within a tier.
func (s *Service) Delete(tier, id string) error {
	return s.db.Where("tier = ?", tier).Delete(&models.ContentModel{}, "id = ?", id).Error
}

// parseMonth accepts "01".."12" (or "1".."12") and rejects anything else.
func parseMonth(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}
