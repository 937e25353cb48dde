package auth

import "github.com/gin-gonic/gin"

func RegisterAuthRoutes(router *gin.RouterGroup, service *AuthService, authMiddleware gin.HandlerFunc) {
	authController := NewAuthController(service)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(authMiddleware)
	{
		authProtected.GET("/me", authController.GetProfile)
		authProtected.PUT("/profile", authController.UpdateProfile)
	}
}
