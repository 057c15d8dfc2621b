package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/domain/repository"
	"bunny-video/infrastructure/clients/bunny"
	"bunny-video/infrastructure/logger"
)

// ListCacheTTL is how long a successful list response is served from cache.
const ListCacheTTL = 120 * time.Second

// VideoListRepository serves Stream list responses through a transient store.
// Concurrent misses on the same key may each reach the API; the last write wins.
type VideoListRepository struct {
	Store  repository.ITransientStore
	Client repository.IBunnyStream
}

func NewVideoListRepository(store repository.ITransientStore, client repository.IBunnyStream) repository.IVideoList {
	return &VideoListRepository{Store: store, Client: client}
}

// ListCacheKey is deterministic and distinct for every (library, page, pageSize, search) tuple.
func ListCacheKey(libraryID, page, pageSize int, search string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%d|%s", page, pageSize, search)))
	return fmt.Sprintf("bunny:videos:%d:%x", libraryID, sum)
}

func (r *VideoListRepository) GetOrFetch(ctx context.Context, creds model.Credentials, page, pageSize int, search string) (dto.RawVideoList, error) {
	if !creds.Configured() {
		return nil, model.ErrConfigurationMissing
	}
	page = bunny.ClampPage(page)
	pageSize = bunny.ClampPageSize(pageSize)
	key := ListCacheKey(creds.LibraryID, page, pageSize, search)

	if raw, ok := r.lookup(ctx, key); ok {
		return raw, nil
	}

	raw, err := r.Client.ListVideos(ctx, creds, page, pageSize, search)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("list cache: encode failed, not caching")
		return raw, nil
	}
	if err := r.Store.Set(ctx, key, encoded, ListCacheTTL); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "key": key}).Warn("list cache: store write failed")
	}
	return raw, nil
}

// lookup treats store errors and undecodable entries as misses
func (r *VideoListRepository) lookup(ctx context.Context, key string) (dto.RawVideoList, bool) {
	val, ok, err := r.Store.Get(ctx, key)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "key": key}).Warn("list cache: store read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var raw dto.RawVideoList
	if err := json.Unmarshal(val, &raw); err != nil || raw == nil {
		logger.GetLogger().WithField("key", key).Warn("list cache: dropping undecodable entry")
		return nil, false
	}
	return raw, true
}
