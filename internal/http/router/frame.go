package router

import (
	"github.com/gin-gonic/gin"

	"tipcast.app/frames/internal/http/handler"
	"tipcast.app/frames/internal/http/middleware"
)

func FrameRouter(router *gin.RouterGroup, frames *handler.FrameHandler, images *handler.ImageHandler, limiters Limiters) {
	frameLimit := middleware.RateLimit(limiters.Frame, "frame")
	tipLimit := middleware.RateLimit(limiters.Tip, "tip")
	imageLimit := middleware.RateLimit(limiters.Image, "image")

	// Read-only screens cache briefly; anything advancing state does not.
	router.GET("", frameLimit, middleware.CacheControl("public, max-age=60"), frames.Get)
	router.POST("", frameLimit, middleware.NoStore(), frames.Post)
	router.POST("/prepare-tip", tipLimit, middleware.NoStore(), frames.PrepareTip)
	router.GET("/prepare-tip", tipLimit, middleware.NoStore(), frames.TipCallback)
	router.GET("/image", imageLimit, middleware.CacheControl("public, max-age=300"), images.Get)
}
