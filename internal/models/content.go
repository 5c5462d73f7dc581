package models

import "time"

// Tier values partition content by access level. Slug is unique within a
// tier, not globally.
const (
	TierFree    = "free"
	TierVIP     = "vip"
	TierBanned  = "banned"
	TierUnknown = "unknown"
)

// ContentModel is one catalog entry. The six link columns hold a primary and
// a mirror URL for each distribution channel; any subset may be empty.
type ContentModel struct {
	Base
	Tier      string    `json:"-"         gorm:"size:16;not null;index;uniqueIndex:idx_tier_slug,priority:1"`
	Slug      string    `json:"slug"      gorm:"size:191;not null;uniqueIndex:idx_tier_slug,priority:2"`
	Name      string    `json:"name"      gorm:"size:255;not null;index"`
	Category  string    `json:"category"  gorm:"size:191;index"`
	PostDate  time.Time `json:"postDate"  gorm:"index"`
	Thumbnail string    `json:"thumbnail,omitempty"`

	LinkMega             string `json:"link,omitempty"`
	LinkPixeldrain       string `json:"linkP,omitempty"`
	LinkGofile           string `json:"linkG,omitempty"`
	LinkMegaMirror       string `json:"linkMV1,omitempty"`
	LinkPixeldrainMirror string `json:"linkMV2,omitempty"`
	LinkGofileMirror     string `json:"linkMV3,omitempty"`
}

func (ContentModel) TableName() string { return "contents" }
