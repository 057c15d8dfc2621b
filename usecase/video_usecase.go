package usecase

import (
	"context"
	"strconv"
	"strings"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/domain/repository"
	"bunny-video/infrastructure/logger"
	"bunny-video/infrastructure/utils"
)

// BrowsePageSize is the page size used by the media browser.
const BrowsePageSize = 48

const missingVideoIDMessage = "Bunny video ID is missing."

// shortcodeDefaults also lists the only attributes Render accepts
var shortcodeDefaults = map[string]string{
	"id":         "",
	"library":    "",
	"responsive": "true",
	"autoplay":   "false",
	"muted":      "false",
	"loop":       "false",
	"preload":    "true",
}

type IVideoUsecase interface {
	// ListVideos returns one page of the configured library for the media browser.
	ListVideos(ctx context.Context, page int, search string) (model.VideoListResult, error)
	// TestConnection fetches one item to confirm the configured credentials work.
	TestConnection(ctx context.Context) (bool, error)
	// Render turns shortcode-style string attributes into the player fragment.
	Render(ctx context.Context, attrs map[string]string) (string, error)
	RenderBlock(ctx context.Context, attrs dto.EmbedBlockAttributes) (string, error)
	// RenderContent expands every embed tag found in content.
	RenderContent(ctx context.Context, content string) (string, error)
}

type VideoUsecase struct {
	settings    ISettingsUsecase
	videoList   repository.IVideoList
	normalizer  *Normalizer
	embed       *EmbedURLBuilder
	renderer    repository.IRenderer
	permissions repository.IPermissionChecker
}

func NewVideoUsecase(
	settings ISettingsUsecase,
	videoList repository.IVideoList,
	normalizer *Normalizer,
	embed *EmbedURLBuilder,
	renderer repository.IRenderer,
	permissions repository.IPermissionChecker,
) IVideoUsecase {
	return &VideoUsecase{
		settings:    settings,
		videoList:   videoList,
		normalizer:  normalizer,
		embed:       embed,
		renderer:    renderer,
		permissions: permissions,
	}
}

func (u *VideoUsecase) ListVideos(ctx context.Context, page int, search string) (model.VideoListResult, error) {
	if page < 1 {
		page = 1
	}
	creds, err := u.settings.Credentials(ctx)
	if err != nil {
		return model.VideoListResult{}, err
	}
	raw, err := u.videoList.GetOrFetch(ctx, creds, page, BrowsePageSize, utils.SanitizeText(search))
	if err != nil {
		return model.VideoListResult{}, err
	}
	return model.VideoListResult{
		Page:  page,
		Items: u.normalizer.Normalize(raw),
	}, nil
}

func (u *VideoUsecase) TestConnection(ctx context.Context) (bool, error) {
	creds, err := u.settings.Credentials(ctx)
	if err != nil {
		return false, err
	}
	if _, err := u.videoList.GetOrFetch(ctx, creds, 1, 1, ""); err != nil {
		return false, err
	}
	return true, nil
}

func (u *VideoUsecase) Render(ctx context.Context, attrs map[string]string) (string, error) {
	atts := make(map[string]string, len(shortcodeDefaults))
	for k, def := range shortcodeDefaults {
		atts[k] = def
		if v, ok := attrs[k]; ok {
			atts[k] = v
		}
	}

	videoID := utils.SanitizeText(atts["id"])
	if utils.FilterIdentifier(videoID) == "" {
		return u.editorError(ctx, missingVideoIDMessage)
	}
	libraryID, _ := strconv.Atoi(utils.DigitsOnly(atts["library"]))
	if libraryID <= 0 {
		libraryID = u.configuredLibrary(ctx)
	}

	src := u.embed.Build(model.EmbedConfig{
		VideoID:   videoID,
		LibraryID: libraryID,
		Options: model.PlayerOptions{
			model.OptionResponsive:       parseBool(atts["responsive"]),
			model.OptionAutoplay:         parseBool(atts["autoplay"]),
			model.OptionMuted:            parseBool(atts["muted"]),
			model.OptionLoop:             parseBool(atts["loop"]),
			model.OptionPreload:          parseBool(atts["preload"]),
			model.OptionPlaysInline:      true,
			model.OptionRememberPosition: false,
		},
	})
	return u.renderer.RenderEmbed(src)
}

// configuredLibrary returns the stored library id, or 0 when settings cannot be read
func (u *VideoUsecase) configuredLibrary(ctx context.Context) int {
	creds, err := u.settings.Credentials(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("render: settings unavailable, using library fallback")
		return 0
	}
	return creds.LibraryID
}

// RenderBlock maps typed block attributes onto Render, applying the block defaults.
func (u *VideoUsecase) RenderBlock(ctx context.Context, attrs dto.EmbedBlockAttributes) (string, error) {
	flag := func(v *bool, def bool) string {
		if v == nil {
			return strconv.FormatBool(def)
		}
		return strconv.FormatBool(*v)
	}
	return u.Render(ctx, map[string]string{
		"id":         attrs.VideoID,
		"library":    attrs.LibraryID,
		"responsive": flag(attrs.Responsive, true),
		"autoplay":   flag(attrs.Autoplay, false),
		"muted":      flag(attrs.Muted, false),
		"loop":       flag(attrs.Loop, false),
		"preload":    flag(attrs.Preload, true),
	})
}

func (u *VideoUsecase) RenderContent(ctx context.Context, content string) (string, error) {
	return expandShortcodes(content, func(attrs map[string]string) string {
		html, err := u.Render(ctx, attrs)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("render: embed tag failed")
			return ""
		}
		return html
	}), nil
}

// editorError shows message only to callers who can edit content
func (u *VideoUsecase) editorError(ctx context.Context, message string) (string, error) {
	if !u.permissions.Can(ctx, model.CapabilityEditContent) {
		return "", nil
	}
	return u.renderer.RenderError(message)
}

// parseBool accepts 1/true/on/yes case-insensitively; anything else is false
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
