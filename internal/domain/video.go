package domain

// VideoItem is an embedded or locally uploaded video in the gallery.
type VideoItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EmbedURL     string `json:"embedUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	IsLocal      bool   `json:"isLocal"`
}

// VideoPatch updates only the non-nil fields of a video.
type VideoPatch struct {
	Title        *string
	Description  *string
	EmbedURL     *string
	ThumbnailURL *string
	IsLocal      *bool
}

func (vp VideoPatch) Apply(v VideoItem) VideoItem {
	v.Title = StrOr(v.Title, vp.Title)
	v.Description = StrOr(v.Description, vp.Description)
	v.EmbedURL = StrOr(v.EmbedURL, vp.EmbedURL)
	v.ThumbnailURL = StrOr(v.ThumbnailURL, vp.ThumbnailURL)
	v.IsLocal = BoolOr(v.IsLocal, vp.IsLocal)
	return v
}
