package repository

import (
	"context"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
)

// IBunnyStream lists videos of a Stream library
type IBunnyStream interface {
	ListVideos(ctx context.Context, creds model.Credentials, page, pageSize int, search string) (dto.RawVideoList, error)
}

// IVideoList is IBunnyStream behind a short-lived cache
type IVideoList interface {
	GetOrFetch(ctx context.Context, creds model.Credentials, page, pageSize int, search string) (dto.RawVideoList, error)
}
