package player

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/pkg/rmiddleware"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, service *PlayerService, authMiddleware gin.HandlerFunc) {
	pc := NewPlayerController(service)

	players := router.Group("/players")
	players.Use(authMiddleware)
	{
		players.POST("/profile", rmiddleware.PlayerMiddleware(), pc.CreateOrUpdateProfile)
		players.GET("/profile", pc.GetProfile)
		players.GET("/me/stats", pc.GetStats)

		players.GET("", rmiddleware.BrowsePlayersMiddleware(), pc.ListPlayers)
		players.GET("/:id", rmiddleware.BrowsePlayersMiddleware(), pc.GetPlayer)
	}
}
