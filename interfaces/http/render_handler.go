package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bunny-video/domain/dto"
	"bunny-video/infrastructure/logger"
	"bunny-video/interfaces/middleware"
	"bunny-video/usecase"
)

type IRenderHandler interface {
	RenderBlock(c *gin.Context)
	RenderContent(c *gin.Context)
}

type RenderHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewRenderHandler(videoUsecase usecase.IVideoUsecase) IRenderHandler {
	return &RenderHandler{videoUsecase: videoUsecase}
}

func (h *RenderHandler) RenderBlock(c *gin.Context) {
	var req dto.EmbedBlockAttributes
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	html, err := h.videoUsecase.RenderBlock(c.Request.Context(), req)
	h.respond(c, html, err)
}

func (h *RenderHandler) RenderContent(c *gin.Context) {
	var req dto.RenderContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	html, err := h.videoUsecase.RenderContent(c.Request.Context(), req.Content)
	h.respond(c, html, err)
}

func (h *RenderHandler) respond(c *gin.Context, html string, err error) {
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":     err,
			"requestId": c.GetString(middleware.RequestIDKey),
		}).Error("Render failed")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Render failed"})
		return
	}
	c.JSON(http.StatusOK, dto.RenderResponse{HTML: html})
}
