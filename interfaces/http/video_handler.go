package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bunny-video/domain/dto"
	"bunny-video/domain/repository"
	"bunny-video/usecase"
)

type IVideoHandler interface {
	ListVideos(c *gin.Context)
	TestConnection(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
	permissions  repository.IPermissionChecker
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase, permissions repository.IPermissionChecker) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase, permissions: permissions}
}

// ListVideos serves the media browser: GET /videos?page=&search=
func (h *VideoHandler) ListVideos(c *gin.Context) {
	var req dto.VideoListRequest
	// a non-numeric page falls back to 1 rather than failing the browser
	if err := c.ShouldBindQuery(&req); err != nil {
		req = dto.VideoListRequest{Page: 1, Search: c.Query("search")}
	}

	res, err := h.videoUsecase.ListVideos(c.Request.Context(), req.Page, req.Search)
	if err != nil {
		privilegedError(c, h.permissions, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *VideoHandler) TestConnection(c *gin.Context) {
	if _, err := h.videoUsecase.TestConnection(c.Request.Context()); err != nil {
		privilegedError(c, h.permissions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
