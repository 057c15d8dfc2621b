package dto

// RawVideoList is the provider's list response, parsed but not normalized
type RawVideoList map[string]interface{}

// VideoListQuery is the query string sent to GET /library/{libraryId}/videos
type VideoListQuery struct {
	Page         int    `url:"page"`
	ItemsPerPage int    `url:"itemsPerPage"`
	OrderBy      string `url:"orderBy"`
	Search       string `url:"search,omitempty"`
}

// VideoListRequest is bound from GET /videos
type VideoListRequest struct {
	Page   int    `form:"page"`
	Search string `form:"search"`
}

// EmbedBlockAttributes are the typed attributes of the embed content block
type EmbedBlockAttributes struct {
	VideoID    string `json:"videoId"`
	LibraryID  string `json:"libraryId"`
	Responsive *bool  `json:"responsive,omitempty"`
	Autoplay   *bool  `json:"autoplay,omitempty"`
	Muted      *bool  `json:"muted,omitempty"`
	Loop       *bool  `json:"loop,omitempty"`
	Preload    *bool  `json:"preload,omitempty"`
}

// RenderContentRequest carries host content that may contain embed tags
type RenderContentRequest struct {
	Content string `json:"content"`
}

// RenderResponse wraps a rendered HTML fragment
type RenderResponse struct {
	HTML string `json:"html"`
}
