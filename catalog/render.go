package catalog

// DefaultThumbnail is substituted at render time when an item has no
// thumbnail or its image fails to load. The underlying item is never mutated.
const DefaultThumbnail = "https://images.pexels.com/photos/1591056/pexels-photo-1591056.jpeg?auto=compress&cs=tinysrgb&w=400"

// Card is the render view-model for one content item: the item plus flags
// and routing derived from its tier. It carries no state of its own.
type Card struct {
	Item ContentItem

	IsVip     bool
	IsBanned  bool
	IsUnknown bool
	IsNew     bool
}

// NewCard derives a card from an item and the tier of the page showing it.
func NewCard(item ContentItem, tier Tier, isNew bool) Card {
	return Card{
		Item:      item,
		IsVip:     tier == TierVIP,
		IsBanned:  tier == TierBanned,
		IsUnknown: tier == TierUnknown,
		IsNew:     isNew,
	}
}

// Route returns the tier-specific navigation path for the card.
func (c Card) Route() string {
	switch {
	case c.IsBanned:
		return "/banned/" + c.Item.Slug
	case c.IsUnknown:
		return "/unknown/" + c.Item.Slug
	case c.IsVip:
		return "/vip/" + c.Item.Slug
	default:
		return "/free/" + c.Item.Slug
	}
}

// Thumbnail returns the item's thumbnail, falling back to the default.
func (c Card) Thumbnail() string {
	if c.Item.Thumbnail == "" {
		return DefaultThumbnail
	}
	return c.Item.Thumbnail
}

// DownloadOptions groups the item's links per distribution channel.
type DownloadOptions struct {
	Primary map[string]string
	Mirror  map[string]string
}

// Downloads collects the present links; absent channels are omitted.
func (c Card) Downloads() DownloadOptions {
	opts := DownloadOptions{Primary: map[string]string{}, Mirror: map[string]string{}}
	put := func(m map[string]string, channel, link string) {
		if link != "" {
			m[channel] = link
		}
	}
	put(opts.Primary, "mega", c.Item.Mega)
	put(opts.Primary, "pixeldrain", c.Item.Pixeldrain)
	put(opts.Primary, "gofile", c.Item.Gofile)
	put(opts.Mirror, "mega", c.Item.MegaMirror)
	put(opts.Mirror, "pixeldrain", c.Item.PixeldrainMirror)
	put(opts.Mirror, "gofile", c.Item.GofileMirror)
	return opts
}
