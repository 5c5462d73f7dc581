// Package pagination parses page/limit query params and applies them to GORM
// queries.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 24
	MaxLimit     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts and clamps pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", "24"), DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Page: page, Limit: limit}
}

// Paginate applies limit/offset to a GORM query and returns the page count
// derived from the total row count.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (totalPages int, err error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := db.Offset(offset).Limit(q.Limit).Find(dest).Error; err != nil {
		return 0, err
	}

	return int((total + int64(q.Limit) - 1) / int64(q.Limit)), nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
