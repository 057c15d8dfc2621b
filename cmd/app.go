package cmd

import (
	"context"
	"fmt"

	"bunny-video/domain/model"
	"bunny-video/domain/repository"
	"bunny-video/infrastructure/cache"
	"bunny-video/infrastructure/clients/bunny"
	"bunny-video/infrastructure/configuration"
	"bunny-video/infrastructure/logger"
	"bunny-video/infrastructure/persistence"
	"bunny-video/infrastructure/render"
	"bunny-video/interfaces/middleware"
	"bunny-video/usecase"
)

// app is the composition root shared by every command.
type app struct {
	permissions     repository.IPermissionChecker
	settingsUsecase usecase.ISettingsUsecase
	videoUsecase    usecase.IVideoUsecase
	// memoryStore is set only when the list cache lives in process and needs sweeping
	memoryStore *cache.MemoryStore
	closers     []func() error
}

func newApp(ctx context.Context, cfg *configuration.Config) (*app, error) {
	a := &app{permissions: middleware.NewClaimsPermissionChecker()}

	settings, err := a.initSettings(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	store := a.initStore(ctx, cfg)

	client := bunny.NewStreamClient(bunny.Config{
		APIBase: cfg.Bunny.APIBase,
		Version: cfg.App.Version,
		SiteURL: cfg.App.SiteURL,
	})

	a.settingsUsecase = usecase.NewSettingsUsecase(settings)
	a.videoUsecase = usecase.NewVideoUsecase(
		a.settingsUsecase,
		persistence.NewVideoListRepository(store, client),
		usecase.NewNormalizer(),
		usecase.NewEmbedURLBuilder(cfg.Bunny.EmbedBase),
		render.NewIframeRenderer(),
		a.permissions,
	)
	return a, nil
}

// initSettings opens the configured settings backend, seeding defaults from config.
func (a *app) initSettings(cfg *configuration.Config) (repository.ISettings, error) {
	defaults := map[string]string{
		model.SettingLibraryID: cfg.Bunny.LibraryID,
		model.SettingAccessKey: cfg.Bunny.AccessKey,
	}
	for k, v := range model.SettingDefaults {
		if defaults[k] == "" {
			defaults[k] = v
		}
	}

	switch cfg.Settings.Backend {
	case "postgres":
		db, err := persistence.NewPostgreSQLDB(cfg.Database.Psql)
		if err != nil {
			return nil, fmt.Errorf("connect postgres settings store: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		if err := persistence.EnsureSettingsSchema(db); err != nil {
			return nil, fmt.Errorf("ensure settings schema: %w", err)
		}
		logger.GetLogger().Info("Settings stored in PostgreSQL")
		return persistence.NewSettingsRepository(db, defaults), nil
	case "mssql":
		db, err := persistence.NewMSSQLDB(cfg.Database.Mssql)
		if err != nil {
			return nil, fmt.Errorf("connect mssql settings store: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		if err := persistence.EnsureSettingsSchemaMSSQL(db); err != nil {
			return nil, fmt.Errorf("ensure settings schema: %w", err)
		}
		logger.GetLogger().Info("Settings stored in MSSQL")
		return persistence.NewSettingsRepositoryMSSQL(db, defaults), nil
	case "", "memory":
		logger.GetLogger().Info("Settings kept in memory; changes are lost on restart")
		return persistence.NewMemorySettings(defaults), nil
	default:
		return nil, fmt.Errorf("unknown settings backend %q", cfg.Settings.Backend)
	}
}

// initStore picks the list cache backend. An unreachable Redis degrades to the memory store.
func (a *app) initStore(ctx context.Context, cfg *configuration.Config) repository.ITransientStore {
	if cfg.Cache.Backend == "redis" {
		addr := fmt.Sprintf("%s:%s", cfg.RedisClient.Host, cfg.RedisClient.Port)
		client, err := cache.NewCache(ctx, addr, cfg.RedisClient.Username, cfg.RedisClient.Password, cfg.RedisClient.DB)
		if err == nil {
			a.closers = append(a.closers, client.Close)
			return cache.NewRedisStore(client)
		}
		logger.GetLogger().WithField("error", err).Warn("Redis not available - caching video lists in memory")
	}
	a.memoryStore = cache.NewMemoryStore()
	return a.memoryStore
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Error while closing resource")
		}
	}
	a.closers = nil
}
