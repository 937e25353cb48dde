package video

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/pkg/rmiddleware"
)

func RegisterVideoRoutes(router *gin.RouterGroup, service *VideoService, authMiddleware gin.HandlerFunc) {
	vc := NewVideoController(service)

	videos := router.Group("/videos")
	videos.Use(authMiddleware)
	{
		videos.POST("/upload", rmiddleware.Require(user.CapUploadVideo), vc.Upload)
		videos.GET("/my-videos", vc.ListMine)
		videos.GET("/player/:playerId", vc.ListByPlayer)
		videos.PUT("/:id", vc.Update)
		videos.DELETE("/:id", vc.Delete)
	}
}
