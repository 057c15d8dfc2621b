package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/infrastructure/persistence"
	"bunny-video/infrastructure/render"
	"bunny-video/usecase"
)

type MockVideoList struct {
	mock.Mock
}

func (m *MockVideoList) GetOrFetch(ctx context.Context, creds model.Credentials, page, pageSize int, search string) (dto.RawVideoList, error) {
	args := m.Called(ctx, creds, page, pageSize, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(dto.RawVideoList), args.Error(1)
}

type staticPermissions map[model.Capability]bool

func (p staticPermissions) Can(_ context.Context, c model.Capability) bool {
	return p[c]
}

var configured = model.Credentials{LibraryID: 42, AccessKey: "key"}

func newVideoUsecase(list *MockVideoList, perms staticPermissions) usecase.IVideoUsecase {
	settings := usecase.NewSettingsUsecase(persistence.NewMemorySettings(map[string]string{
		model.SettingLibraryID: "42",
		model.SettingAccessKey: "key",
	}))
	return usecase.NewVideoUsecase(
		settings,
		list,
		usecase.NewNormalizer(),
		usecase.NewEmbedURLBuilder("https://iframe.mediadelivery.net/embed"),
		render.NewIframeRenderer(),
		perms,
	)
}

func TestVideoUsecase_ListVideos(t *testing.T) {
	list := new(MockVideoList)
	list.On("GetOrFetch", mock.Anything, configured, 1, usecase.BrowsePageSize, "cats").
		Return(dto.RawVideoList{"items": []interface{}{
			map[string]interface{}{"guid": "abc", "title": "T"},
		}}, nil).Once()

	u := newVideoUsecase(list, nil)
	res, err := u.ListVideos(context.Background(), 0, "  cats ")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, []model.VideoRecord{{ID: "abc", Title: "T"}}, res.Items)
	list.AssertExpectations(t)
}

func TestVideoUsecase_ListVideosPassesErrorThrough(t *testing.T) {
	list := new(MockVideoList)
	remoteErr := &model.RemoteHTTPError{StatusCode: 401}
	list.On("GetOrFetch", mock.Anything, configured, 3, usecase.BrowsePageSize, "").Return(nil, remoteErr)

	u := newVideoUsecase(list, nil)
	_, err := u.ListVideos(context.Background(), 3, "")
	assert.Equal(t, remoteErr, err)
}

func TestVideoUsecase_TestConnection(t *testing.T) {
	list := new(MockVideoList)
	list.On("GetOrFetch", mock.Anything, configured, 1, 1, "").Return(dto.RawVideoList{}, nil).Once()

	ok, err := newVideoUsecase(list, nil).TestConnection(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	failing := new(MockVideoList)
	failing.On("GetOrFetch", mock.Anything, configured, 1, 1, "").Return(nil, model.ErrTransport)
	ok, err = newVideoUsecase(failing, nil).TestConnection(context.Background())
	assert.ErrorIs(t, err, model.ErrTransport)
	assert.False(t, ok)
}

func TestVideoUsecase_Render(t *testing.T) {
	u := newVideoUsecase(new(MockVideoList), nil)

	html, err := u.Render(context.Background(), map[string]string{"id": "abc-1", "autoplay": "yes", "loop": "0"})
	require.NoError(t, err)
	assert.Contains(t, html, `padding-top:56.25%`)
	assert.Contains(t, html, `https://iframe.mediadelivery.net/embed/42/abc-1?`)
	assert.Contains(t, html, "autoplay=true")
	assert.Contains(t, html, "loop=false")
	assert.Contains(t, html, "playsinline=true")
	assert.Contains(t, html, "rememberPosition=false")
	assert.Contains(t, html, "preload=true")
	assert.NotContains(t, html, "showSpeed")
}

func TestVideoUsecase_RenderUsesExplicitLibrary(t *testing.T) {
	u := newVideoUsecase(new(MockVideoList), nil)

	html, err := u.Render(context.Background(), map[string]string{"id": "abc", "library": "7x"})
	require.NoError(t, err)
	assert.Contains(t, html, "/embed/7/abc?")
}

func TestVideoUsecase_RenderMissingID(t *testing.T) {
	viewer := newVideoUsecase(new(MockVideoList), nil)
	html, err := viewer.Render(context.Background(), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "", html)

	editor := newVideoUsecase(new(MockVideoList), staticPermissions{model.CapabilityEditContent: true})
	html, err = editor.Render(context.Background(), map[string]string{"id": "   "})
	require.NoError(t, err)
	assert.Equal(t, `<div class="notice notice-error"><p>Bunny video ID is missing.</p></div>`, html)
}

func TestVideoUsecase_RenderBlock(t *testing.T) {
	u := newVideoUsecase(new(MockVideoList), nil)
	muted := true

	html, err := u.RenderBlock(context.Background(), dto.EmbedBlockAttributes{VideoID: "vid", LibraryID: "9", Muted: &muted})
	require.NoError(t, err)
	assert.Contains(t, html, "/embed/9/vid?")
	assert.Contains(t, html, "muted=true")
	assert.Contains(t, html, "responsive=true")
	assert.Contains(t, html, "autoplay=false")
}

func TestVideoUsecase_RenderContent(t *testing.T) {
	u := newVideoUsecase(new(MockVideoList), nil)

	out, err := u.RenderContent(context.Background(),
		`<p>intro</p>[bunny_video id="one" autoplay='on'] mid [bunny_video id=two library=3][bunny_video]`)
	require.NoError(t, err)
	assert.Contains(t, out, "<p>intro</p>")
	assert.Contains(t, out, "/embed/42/one?")
	assert.Contains(t, out, "autoplay=true")
	assert.Contains(t, out, "/embed/3/two?")
	assert.Contains(t, out, " mid ")
	assert.NotContains(t, out, "[bunny_video")
}

func TestVideoUsecase_RenderContentLegacyTag(t *testing.T) {
	u := newVideoUsecase(new(MockVideoList), nil)

	out, err := u.RenderContent(context.Background(), `x [doka_bunny_video id="old-1" library="8"] y [bunny_videos id="no"]`)
	require.NoError(t, err)
	assert.Contains(t, out, "/embed/8/old-1?")
	assert.NotContains(t, out, "[doka_bunny_video")
	assert.Contains(t, out, `[bunny_videos id="no"]`)
}
