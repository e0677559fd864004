package middleware

import "github.com/gin-gonic/gin"

// CacheControl pins a Cache-Control policy on every response of a route.
// Read-only screens get a short public cache; state-changing routes should
// use NoStore.
func CacheControl(policy string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", policy)
		c.Next()
	}
}

// NoStore marks responses uncacheable.
func NoStore() gin.HandlerFunc {
	return CacheControl("no-store")
}
