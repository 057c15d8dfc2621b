package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bunny-video/domain/model"
	"bunny-video/domain/repository"
	"bunny-video/infrastructure/logger"
	"bunny-video/infrastructure/utils"
	"bunny-video/interfaces/middleware"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

// privilegedError writes the failure payload: editors see the reason, everyone else an empty list.
func privilegedError(c *gin.Context, permissions repository.IPermissionChecker, err error) {
	logger.GetLogger().WithFields(map[string]interface{}{
		"error":     err,
		"requestId": c.GetString(middleware.RequestIDKey),
		"path":      c.FullPath(),
	}).Error("Bunny Stream request failed")

	if permissions.Can(c.Request.Context(), model.CapabilityEditContent) {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": utils.SanitizeText(userMessage(err))})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": false, "items": []interface{}{}})
}

func userMessage(err error) string {
	if !model.IsRemoteFailure(err) {
		return "Bunny Stream settings could not be read."
	}
	var httpErr *model.RemoteHTTPError
	switch {
	case errors.Is(err, model.ErrConfigurationMissing):
		return "Bunny Stream is not configured yet."
	case errors.As(err, &httpErr):
		return fmt.Sprintf("Failed to fetch videos from Bunny Stream (HTTP %d).", httpErr.StatusCode)
	case errors.Is(err, model.ErrMalformedResponse):
		return "Unexpected response from Bunny Stream."
	default:
		return "Could not reach Bunny Stream."
	}
}

func badRequest(c *gin.Context, err error) {
	logger.GetLogger().WithFields(map[string]interface{}{
		"error":     err,
		"requestId": c.GetString(middleware.RequestIDKey),
	}).Error(ErrorUnmarshal)
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": fmt.Sprintf("%s %v", ErrorUnmarshal, err)})
}
