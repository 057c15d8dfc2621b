package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"bunny-video/domain/model"
	"bunny-video/infrastructure/utils"
)

// EmbedURLBuilder builds iframe player URLs. It performs no I/O.
type EmbedURLBuilder struct {
	base string
}

func NewEmbedURLBuilder(base string) *EmbedURLBuilder {
	return &EmbedURLBuilder{base: strings.TrimSuffix(base, "/")}
}

// Build returns {base}/{libraryID}/{videoID}?{options}. A library id below 1 is
// floored to 1. The caller resolves the configured fallback and rejects empty ids.
func (b *EmbedURLBuilder) Build(embed model.EmbedConfig) string {
	libraryID := embed.LibraryID
	if libraryID < 1 {
		libraryID = 1
	}

	src := fmt.Sprintf("%s/%d/%s", b.base, libraryID, utils.FilterIdentifier(embed.VideoID))

	q := url.Values{}
	for _, key := range model.PlayerOptionKeys {
		if v, ok := embed.Options[key]; ok {
			q.Set(string(key), fmt.Sprintf("%t", v))
		}
	}
	if len(q) == 0 {
		return src
	}
	return src + "?" + q.Encode()
}
