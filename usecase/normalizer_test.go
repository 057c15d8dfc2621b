package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/usecase"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := usecase.NewNormalizer()

	t.Run("maps whitelisted fields", func(t *testing.T) {
		raw := dto.RawVideoList{"items": []interface{}{
			map[string]interface{}{"guid": "abc", "title": "T", "thumbnailUrl": "https://x/y.jpg", "length": 12.0},
		}}
		assert.Equal(t, []model.VideoRecord{{ID: "abc", Title: "T", ThumbnailURL: "https://x/y.jpg"}}, n.Normalize(raw))
	})

	t.Run("missing items", func(t *testing.T) {
		assert.Equal(t, []model.VideoRecord{}, n.Normalize(dto.RawVideoList{}))
		assert.Equal(t, []model.VideoRecord{}, n.Normalize(nil))
		assert.Equal(t, []model.VideoRecord{}, n.Normalize(dto.RawVideoList{"items": "nope"}))
	})

	t.Run("empty item yields empty record", func(t *testing.T) {
		raw := dto.RawVideoList{"items": []interface{}{map[string]interface{}{}}}
		assert.Equal(t, []model.VideoRecord{{}}, n.Normalize(raw))
	})

	t.Run("sanitizes and keeps order", func(t *testing.T) {
		raw := dto.RawVideoList{"items": []interface{}{
			map[string]interface{}{"guid": "b", "title": "<b>Bold</b>  title", "thumbnailUrl": "javascript:alert(1)"},
			map[string]interface{}{"guid": "a", "title": 7.0, "thumbnailUrl": ""},
			"not-an-object",
			map[string]interface{}{"guid": map[string]interface{}{"x": 1}, "title": true},
		}}
		got := n.Normalize(raw)
		assert.Equal(t, []model.VideoRecord{
			{ID: "b", Title: "Bold title"},
			{ID: "a", Title: "7"},
			{},
			{Title: "true"},
		}, got)
	})
}
