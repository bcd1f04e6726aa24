package notifications

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/findme/internal/pkg/notify"
)

func RegisterRoutes(ctx context.Context, router *gin.RouterGroup, queue *notify.Queue, allowedOrigins []string) {
	handler := NewHandler(ctx, queue, allowedOrigins)

	notifications := router.Group("/notifications")
	{
		notifications.GET("", handler.ListNotifications)
		notifications.GET("/ws", handler.Stream)
		notifications.DELETE("/:id", handler.DismissNotification)
	}
}
