package api

import (
	"Parley/internal/api/config"
	"Parley/internal/api/middleware"
	"Parley/internal/pkg/logger"
	"Parley/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const wsPath = "/api/im/ws"

func SetupRouter(group *HandlersGroup, logCfg config.LogstashConfig) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware(wsPath))
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, logCfg.Token, logCfg.Index)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			response.Success(c, "pong")
		})

		imGroup := apiGroup.Group("/im")
		{
			// WebSocket 握手自行校验 token 查询参数
			imGroup.GET("/ws", group.WsHandler.Connect)

			authGroup := imGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/send", group.IMHandler.SendMessage)
				authGroup.GET("/conversations", group.IMHandler.GetConversationList)
				authGroup.GET("/conversations/:conversation_id/messages", group.IMHandler.GetChatHistory)
				authGroup.PUT("/conversations/:conversation_id/read", group.IMHandler.MarkConversationRead)
				authGroup.PUT("/messages/:message_id/read", group.IMHandler.MarkMessageRead)
				authGroup.GET("/unread-count", group.IMHandler.GetUnreadCount)
				authGroup.GET("/status", group.IMHandler.Status)
			}
		}
	}

	return r
}
