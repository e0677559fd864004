package router

import (
	"github.com/gin-gonic/gin"

	"tipcast.app/frames/internal/http/handler"
)

func TipRouter(router *gin.RouterGroup, handler *handler.TipHandler) {
	router.POST("/tips", handler.Record)
	router.GET("/leaderboard", handler.Leaderboard)
}
