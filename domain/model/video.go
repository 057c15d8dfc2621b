package model

// VideoRecord is the minimal, sanitized shape of a provider video
type VideoRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumb"`
}

// VideoListResult is one page of normalized records in provider order
type VideoListResult struct {
	Page  int           `json:"page"`
	Items []VideoRecord `json:"items"`
}

// Credentials identifies the Stream library and its AccessKey
type Credentials struct {
	LibraryID int
	AccessKey string
}

// Configured reports whether a library id is present.
func (c Credentials) Configured() bool {
	return c.LibraryID > 0
}

type PlayerOption string

const (
	OptionAutoplay         PlayerOption = "autoplay"
	OptionMuted            PlayerOption = "muted"
	OptionLoop             PlayerOption = "loop"
	OptionPreload          PlayerOption = "preload"
	OptionResponsive       PlayerOption = "responsive"
	OptionPlaysInline      PlayerOption = "playsinline"
	OptionShowSpeed        PlayerOption = "showSpeed"
	OptionRememberPosition PlayerOption = "rememberPosition"
)

// PlayerOptionKeys is the complete set of options the iframe player accepts.
var PlayerOptionKeys = []PlayerOption{
	OptionAutoplay,
	OptionMuted,
	OptionLoop,
	OptionPreload,
	OptionResponsive,
	OptionPlaysInline,
	OptionShowSpeed,
	OptionRememberPosition,
}

// PlayerOptions maps an option to its value; absent keys are not sent to the player
type PlayerOptions map[PlayerOption]bool

// EmbedConfig is built per render call and never persisted
type EmbedConfig struct {
	VideoID   string
	LibraryID int
	Options   PlayerOptions
}
