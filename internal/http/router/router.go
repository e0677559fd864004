package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tipcast.app/frames/core/config"
	"tipcast.app/frames/internal/http/handler"
	"tipcast.app/frames/internal/http/middleware"
	"tipcast.app/frames/internal/ratelimit"
	"tipcast.app/frames/internal/service"
)

// Limiters holds one limiter per endpoint class; each keys its own record
// table so classes can't starve each other.
type Limiters struct {
	API   *ratelimit.Limiter
	Frame *ratelimit.Limiter
	Tip   *ratelimit.Limiter
	Image *ratelimit.Limiter
}

// NewLimiters builds the per-class limiters from config.
func NewLimiters(cfg config.RateLimitsConfig) Limiters {
	return Limiters{
		API:   ratelimit.New(cfg.API.MaxRequests, cfg.API.Window),
		Frame: ratelimit.New(cfg.Frame.MaxRequests, cfg.Frame.Window),
		Tip:   ratelimit.New(cfg.Tip.MaxRequests, cfg.Tip.Window),
		Image: ratelimit.New(cfg.Image.MaxRequests, cfg.Image.Window),
	}
}

func SetupRoutes(router *gin.Engine, services *service.Services, limiters Limiters) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	frameHandler := handler.NewFrameHandler(services.Frames(), services.Tips())
	imageHandler := handler.NewImageHandler(services.Images())
	FrameRouter(router.Group("/frame"), frameHandler, imageHandler, limiters)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(limiters.API, "api"))
	{
		tipHandler := handler.NewTipHandler(services.Tips())
		TipRouter(v1, tipHandler)
	}
}
