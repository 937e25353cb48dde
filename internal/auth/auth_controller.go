package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/common"
	"github.com/DhavalSuthar-24/scoutkz/pkg/responses"
)

type AuthController struct {
	service *AuthService
}

func NewAuthController(service *AuthService) *AuthController {
	return &AuthController{service: service}
}

// @Summary      Register a new user
// @Description  Create an account with phone, email and password. Role defaults to player.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} AuthResponse "User registered, returns token and user info"
// @Failure      400   {object} responses.ErrorResponse "Validation error or duplicate phone/email"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	res, err := ac.service.Register(c.Request.Context(), req)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary      Login user
// @Description  Authenticate with phone or email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} AuthResponse
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	res, err := ac.service.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Get current user
// @Tags         Profile
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} UserResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	u, err := ac.service.GetMe(c.Request.Context(), id.ID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, FilterUserRecord(u))
}

// @Summary      Update current user
// @Description  Updates only the supplied fields. Empty organization, city or bio clears it.
// @Tags         Profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profileData body UpdateProfileRequest true "Profile data to update"
// @Success      200 {object} UserResponse
// @Failure      400 {object} responses.ErrorResponse "Invalid input or email taken"
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /auth/profile [put]
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	u, err := ac.service.UpdateProfile(c.Request.Context(), id.ID, req)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, FilterUserRecord(u))
}
