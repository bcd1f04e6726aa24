package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, service *Service) {
	handler := NewHandler(service)

	report := router.Group("/report")
	{
		report.GET("", handler.GetDraft)
		report.PATCH("/fields", handler.SetFields)
		report.POST("/images", handler.AddImages)
		report.DELETE("/images", handler.ClearImages)
		report.DELETE("/images/:index", handler.RemoveImage)
		report.POST("/submit", handler.Submit)
	}
}
