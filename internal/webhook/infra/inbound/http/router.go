package http

import "github.com/gin-gonic/gin"

func RegisterWebhookRoutes(r *gin.Engine, handler *WebhookHandler) {
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/fourthwall", handler.HandleWebhook)
	}
}
