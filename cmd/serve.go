package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bunny-video/infrastructure/logger"
	httpHandler "bunny-video/interfaces/http"
	"bunny-video/server"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 5 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !logger.GetLogger().Logger.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	router := server.InitiateRouter(
		server.RouterConfig{
			RoutePrefix:  cfg.App.RoutePrefix,
			SecretKey:    cfg.App.SecretKey,
			AllowOrigins: cfg.Cors.AllowOrigins,
		},
		a.permissions,
		httpHandler.NewVideoHandler(a.videoUsecase, a.permissions),
		httpHandler.NewRenderHandler(a.videoUsecase),
		httpHandler.NewSettingsHandler(a.settingsUsecase),
		httpHandler.NewHealthHandler(cfg.App.Version),
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if a.memoryStore != nil {
		g.Go(func() error {
			if err := a.memoryStore.RunSweeper(gctx, sweepInterval); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		logger.GetLogger().WithFields(map[string]interface{}{
			"port":   cfg.App.Port,
			"tls":    cfg.App.TLSEnabled,
			"prefix": cfg.App.RoutePrefix,
		}).Info("Starting application")
		return listen(httpServer)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.GetLogger().Info("Application shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		return err
	}
	return nil
}

func listen(httpServer *http.Server) error {
	var err error
	if cfg.App.TLSEnabled {
		cert, key := cfg.App.TLSCertFile, cfg.App.TLSKeyFile
		if cert == "" || key == "" {
			logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
			err = httpServer.ListenAndServe()
		} else {
			logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
			err = httpServer.ListenAndServeTLS(cert, key)
		}
	} else {
		err = httpServer.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
