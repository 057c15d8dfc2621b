package usecase

import (
	"strconv"

	"github.com/samber/lo"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/infrastructure/utils"
)

// Normalizer maps raw Stream records to VideoRecord, keeping only whitelisted fields
type Normalizer struct {
	sanitizeText func(string) string
	sanitizeURL  func(string) string
}

func NewNormalizer() *Normalizer {
	return &Normalizer{sanitizeText: utils.SanitizeText, sanitizeURL: utils.SanitizeURL}
}

// Normalize preserves provider order and never filters records.
func (n *Normalizer) Normalize(raw dto.RawVideoList) []model.VideoRecord {
	items, ok := raw["items"].([]interface{})
	if !ok {
		return []model.VideoRecord{}
	}
	return lo.Map(items, func(item interface{}, _ int) model.VideoRecord {
		fields, _ := item.(map[string]interface{})
		return model.VideoRecord{
			ID:           n.sanitizeText(scalarString(fields["guid"])),
			Title:        n.sanitizeText(scalarString(fields["title"])),
			ThumbnailURL: n.sanitizeURL(scalarString(fields["thumbnailUrl"])),
		}
	})
}

// scalarString renders JSON scalars as text; objects, arrays and null become ""
func scalarString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
