package consultation

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/findme/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, service *Service, limiter *ratelimit.RateLimiter) {
	handler := NewHandler(service)

	consultation := router.Group("/consultation")
	{
		consultation.GET("", handler.GetForm)
		consultation.PATCH("/fields", handler.SetFields)
		// keyed by address: a client can shed its session cookie at will
		consultation.POST("/submit", ratelimit.Middleware(limiter, ratelimit.ByIP), handler.Submit)
	}
}
