package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tipcast.app/frames/internal/frame"
	"tipcast.app/frames/internal/service"
)

type ImageHandler struct {
	images service.ImageService
}

func NewImageHandler(images service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Get renders the still image for a screen. No side effects; the route is
// cacheable by its query string.
func (h *ImageHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	screen, err := frame.FromQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svg, err := h.images.Render(ctx, screen)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render image", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render image"})
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", svg)
}
