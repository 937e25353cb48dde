package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/scoutkz/config"
	"github.com/DhavalSuthar-24/scoutkz/internal/auth"
	"github.com/DhavalSuthar-24/scoutkz/internal/middleware"
	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/rating"
	"github.com/DhavalSuthar-24/scoutkz/internal/video"
	"github.com/DhavalSuthar-24/scoutkz/pkg/responses"
	"github.com/DhavalSuthar-24/scoutkz/pkg/validator"
)

// Services are the process-wide domain services the routes dispatch to.
type Services struct {
	Auth    *auth.AuthService
	Players *player.PlayerService
	Ratings *rating.RatingService
	Videos  *video.VideoService
}

func SetupRoutes(cfg *config.Config, svc Services) *gin.Engine {
	validator.UseJSONNames()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.FrontendURL,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 32 << 20

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/health", health)

	authMiddleware := middleware.AuthMiddleware(svc.Auth)
	auth.RegisterAuthRoutes(api, svc.Auth, authMiddleware)
	player.RegisterPlayerRoutes(api, svc.Players, authMiddleware)
	rating.RegisterRatingRoutes(api, svc.Ratings, authMiddleware)
	video.RegisterVideoRoutes(api, svc.Videos, authMiddleware)

	r.NoRoute(func(c *gin.Context) {
		responses.NotFound(c, "route")
	})
	return r
}

// health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} responses.HealthResponse
// @Router /health [get]
func health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
