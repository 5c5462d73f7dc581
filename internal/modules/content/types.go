package content

import (
	"time"

	"github.com/sevenxleaks/core/catalog"
	"github.com/sevenxleaks/core/internal/models"
)

// SearchQuery holds the filter params of a search request. Page and limit
// are parsed separately by the pagination package.
type SearchQuery struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	Month     string `form:"month"` // two-digit month, "" for all
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"` // ASC | DESC
}

// CreateContentDTO is the admin request body for creating an item.
type CreateContentDTO struct {
	Slug      string `json:"slug"     binding:"required"`
	Name      string `json:"name"     binding:"required"`
	Category  string `json:"category"`
	PostDate  string `json:"postDate" binding:"required"` // YYYY-MM-DD
	Thumbnail string `json:"thumbnail"`

	LinkMega             string `json:"link"`
	LinkPixeldrain       string `json:"linkP"`
	LinkGofile           string `json:"linkG"`
	LinkMegaMirror       string `json:"linkMV1"`
	LinkPixeldrainMirror string `json:"linkMV2"`
	LinkGofileMirror     string `json:"linkMV3"`
}

// UpdateContentDTO is the admin request body for updates; nil fields are
// left unchanged.
type UpdateContentDTO struct {
	Slug      *string `json:"slug"`
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	PostDate  *string `json:"postDate"`
	Thumbnail *string `json:"thumbnail"`

	LinkMega             *string `json:"link"`
	LinkPixeldrain       *string `json:"linkP"`
	LinkGofile           *string `json:"linkG"`
	LinkMegaMirror       *string `json:"linkMV1"`
	LinkPixeldrainMirror *string `json:"linkMV2"`
	LinkGofileMirror     *string `json:"linkMV3"`
}

const postDateLayout = "2006-01-02"

// toItem maps a stored row onto the wire shape shared with the client.
func toItem(m *models.ContentModel) catalog.ContentItem {
	return catalog.ContentItem{
		ID:               m.ID,
		Slug:             m.Slug,
		Name:             m.Name,
		Category:         m.Category,
		PostDate:         m.PostDate.Format(postDateLayout),
		Thumbnail:        m.Thumbnail,
		Mega:             m.LinkMega,
		Pixeldrain:       m.LinkPixeldrain,
		Gofile:           m.LinkGofile,
		MegaMirror:       m.LinkMegaMirror,
		PixeldrainMirror: m.LinkPixeldrainMirror,
		GofileMirror:     m.LinkGofileMirror,
	}
}

func toItems(rows []models.ContentModel) []catalog.ContentItem {
	items := make([]catalog.ContentItem, len(rows))
	for i := range rows {
		items[i] = toItem(&rows[i])
	}
	return items
}

func parsePostDate(s string) (time.Time, error) {
	return time.Parse(postDateLayout, s)
}
