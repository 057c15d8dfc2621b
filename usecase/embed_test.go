package usecase_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bunny-video/domain/model"
	"bunny-video/usecase"
)

func TestEmbedURLBuilder_Build(t *testing.T) {
	b := usecase.NewEmbedURLBuilder("https://iframe.mediadelivery.net/embed/")

	tests := []struct {
		name  string
		embed model.EmbedConfig
		want  string
	}{
		{
			name:  "filters identifier",
			embed: model.EmbedConfig{VideoID: "ab c<script>-12", LibraryID: 5},
			want:  "https://iframe.mediadelivery.net/embed/5/abcscript-12",
		},
		{
			name:  "drops slashes",
			embed: model.EmbedConfig{VideoID: "a/b", LibraryID: 5},
			want:  "https://iframe.mediadelivery.net/embed/5/ab",
		},
		{
			name:  "drops quotes",
			embed: model.EmbedConfig{VideoID: `"x'y"`, LibraryID: 5},
			want:  "https://iframe.mediadelivery.net/embed/5/xy",
		},
		{
			name:  "drops traversal query and fragment",
			embed: model.EmbedConfig{VideoID: "../..?x=1#f", LibraryID: 5},
			want:  "https://iframe.mediadelivery.net/embed/5/x1f",
		},
		{
			name:  "library floored to one",
			embed: model.EmbedConfig{VideoID: "v1", LibraryID: -3},
			want:  "https://iframe.mediadelivery.net/embed/1/v1",
		},
		{
			name: "emits only present options",
			embed: model.EmbedConfig{VideoID: "v1", LibraryID: 2, Options: model.PlayerOptions{
				model.OptionAutoplay: true,
				model.OptionMuted:    false,
			}},
			want: "https://iframe.mediadelivery.net/embed/2/v1?autoplay=true&muted=false",
		},
		{
			name: "emits every known option",
			embed: model.EmbedConfig{VideoID: "v1", LibraryID: 2, Options: model.PlayerOptions{
				model.OptionAutoplay:         true,
				model.OptionMuted:            false,
				model.OptionLoop:             true,
				model.OptionPreload:          false,
				model.OptionResponsive:       true,
				model.OptionPlaysInline:      true,
				model.OptionShowSpeed:        false,
				model.OptionRememberPosition: true,
			}},
			want: "https://iframe.mediadelivery.net/embed/2/v1?autoplay=true&loop=true&muted=false" +
				"&playsinline=true&preload=false&rememberPosition=true&responsive=true&showSpeed=false",
		},
		{
			name:  "ignores unknown options",
			embed: model.EmbedConfig{VideoID: "v1", LibraryID: 2, Options: model.PlayerOptions{"foo": true}},
			want:  "https://iframe.mediadelivery.net/embed/2/v1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Build(tt.embed)
			assert.Equal(t, tt.want, got)

			segment := strings.TrimPrefix(strings.SplitN(got, "?", 2)[0], "https://iframe.mediadelivery.net/embed/")
			assert.Regexp(t, regexp.MustCompile(`^[0-9]+/[A-Za-z0-9-]*$`), segment)
		})
	}
}
