package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bunny-video/domain/dto"
	"bunny-video/infrastructure/logger"
	"bunny-video/interfaces/middleware"
	"bunny-video/usecase"
)

type ISettingsHandler interface {
	Get(c *gin.Context)
	Update(c *gin.Context)
}

type SettingsHandler struct {
	settingsUsecase usecase.ISettingsUsecase
}

func NewSettingsHandler(settingsUsecase usecase.ISettingsUsecase) ISettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	res, err := h.settingsUsecase.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.settingsUsecase.Save(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SettingsHandler) fail(c *gin.Context, err error) {
	logger.GetLogger().WithFields(map[string]interface{}{
		"error":     err,
		"requestId": c.GetString(middleware.RequestIDKey),
	}).Error("Settings store failed")
	c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Settings unavailable"})
}
