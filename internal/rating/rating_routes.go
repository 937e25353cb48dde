package rating

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/pkg/rmiddleware"
)

func RegisterRatingRoutes(router *gin.RouterGroup, service *RatingService, authMiddleware gin.HandlerFunc) {
	rc := NewRatingController(service)

	ratings := router.Group("/ratings")
	ratings.Use(authMiddleware)
	{
		ratings.POST("", rmiddleware.RaterMiddleware(), rc.CreateOrUpdateRating)
		ratings.GET("/player/:playerId", rc.GetPlayerRatings)
		ratings.GET("/my-ratings", rmiddleware.RaterMiddleware(), rc.GetMyRatings)
	}
}
