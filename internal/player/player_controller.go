package player

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/common"
	"github.com/DhavalSuthar-24/scoutkz/pkg/responses"
)

// PlayerController handles API requests related to player profiles.
type PlayerController struct {
	service *PlayerService
}

func NewPlayerController(service *PlayerService) *PlayerController {
	return &PlayerController{service: service}
}

// CreateOrUpdateProfile godoc
// @Summary Create or update own player profile
// @Description Creates the caller's profile on first submission and overwrites it afterwards.
// @Tags Players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile body ProfileRequest true "Profile"
// @Success 201 {object} ProfileResponse "Profile created"
// @Success 200 {object} ProfileResponse "Profile updated"
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /players/profile [post]
func (pc *PlayerController) CreateOrUpdateProfile(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	profile, created, err := pc.service.CreateOrUpdateProfile(c.Request.Context(), id.ID, req)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, ProfileResponse{Message: "Profile created", Profile: profile, IsNew: true})
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{Message: "Profile updated", Profile: profile})
}

// GetProfile godoc
// @Summary Get own player profile
// @Tags Players
// @Security BearerAuth
// @Produce json
// @Success 200 {object} PlayerDetails
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/profile [get]
func (pc *PlayerController) GetProfile(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	profile, err := pc.service.GetProfile(c.Request.Context(), id.ID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetStats godoc
// @Summary Dashboard counters for the caller's profile
// @Tags Players
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Stats
// @Router /players/me/stats [get]
func (pc *PlayerController) GetStats(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	stats, err := pc.service.GetStats(c.Request.Context(), id.ID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPlayers godoc
// @Summary Browse player profiles
// @Description Sorted by average rating, then newest first.
// @Tags Players
// @Security BearerAuth
// @Produce json
// @Param city query string false "City substring (case-insensitive)"
// @Param position query string false "goalkeeper, defender, midfielder or forward"
// @Param age_min query int false "Minimum age"
// @Param age_max query int false "Maximum age"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, at most 100" default(20)
// @Success 200 {array} PlayerDetails
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /players [get]
func (pc *PlayerController) ListPlayers(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	players, err := pc.service.ListPlayers(c.Request.Context(), q)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// GetPlayer godoc
// @Summary Get a player profile by ID
// @Tags Players
// @Security BearerAuth
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} PlayerDetails
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	playerID, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	p, err := pc.service.GetPlayerByID(c.Request.Context(), playerID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
