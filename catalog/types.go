// Package catalog implements the client side of the sevenxleaks content
// catalog: the search query builder, the wire envelope codec shared with the
// server, the per-tier browse store with load-more pagination, and the
// category facet aggregation derived from loaded pages.
package catalog

// Tier partitions content items by access level.
type Tier string

const (
	TierFree    Tier = "free"
	TierVIP     Tier = "vip"
	TierBanned  Tier = "banned"
	TierUnknown Tier = "unknown"
)

// ContentItem is one catalog entry as it appears on the wire.
// Slug is the deep-link key; ID is only a render key.
type ContentItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	PostDate  string `json:"postDate"`
	Slug      string `json:"slug"`
	Thumbnail string `json:"thumbnail,omitempty"`

	// Download links: primary and mirror per distribution channel.
	// Any subset may be absent.
	Mega             string `json:"link,omitempty"`
	Pixeldrain       string `json:"linkP,omitempty"`
	Gofile           string `json:"linkG,omitempty"`
	MegaMirror       string `json:"linkMV1,omitempty"`
	PixeldrainMirror string `json:"linkMV2,omitempty"`
	GofileMirror     string `json:"linkMV3,omitempty"`
}

// Envelope is the decoded search result payload.
type Envelope struct {
	Data       []ContentItem `json:"data"`
	TotalPages int           `json:"totalPages"`
}

// CategoryFacet is a distinct category value surfaced as a filter option.
// All three fields carry the raw category string except for the server's
// /categories listing, where ID is the 1-based fetch position.
type CategoryFacet struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
