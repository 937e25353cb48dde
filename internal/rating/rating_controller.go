package rating

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/common"
	"github.com/DhavalSuthar-24/scoutkz/pkg/responses"
)

type RatingController struct {
	service *RatingService
}

func NewRatingController(service *RatingService) *RatingController {
	return &RatingController{service: service}
}

// CreateOrUpdateRating godoc
// @Summary Rate a player
// @Description Resubmitting for the same player replaces the caller's previous rating.
// @Tags Ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param rating body RatingRequest true "Scores (1-10)"
// @Success 201 {object} RatingResponse "Rating created"
// @Success 200 {object} RatingResponse "Rating updated"
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /ratings [post]
func (rc *RatingController) CreateOrUpdateRating(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	rt, created, err := rc.service.CreateOrUpdateRating(c.Request.Context(), id.ID, req)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, RatingResponse{Message: "Rating created", Rating: rt, IsNew: true})
		return
	}
	c.JSON(http.StatusOK, RatingResponse{Message: "Rating updated", Rating: rt})
}

// GetPlayerRatings godoc
// @Summary Ratings received by a player, newest first
// @Tags Ratings
// @Security BearerAuth
// @Produce json
// @Param playerId path int true "Player ID"
// @Success 200 {array} RatingWithRater
// @Router /ratings/player/{playerId} [get]
func (rc *RatingController) GetPlayerRatings(c *gin.Context) {
	playerID, err := common.ParseIDParam(c, "playerId")
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	ratings, err := rc.service.GetPlayerRatings(c.Request.Context(), playerID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// GetMyRatings godoc
// @Summary Ratings submitted by the caller, newest first
// @Tags Ratings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} RatingWithPlayer
// @Failure 403 {object} responses.ErrorResponse
// @Router /ratings/my-ratings [get]
func (rc *RatingController) GetMyRatings(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	ratings, err := rc.service.GetMyRatings(c.Request.Context(), id.ID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}
