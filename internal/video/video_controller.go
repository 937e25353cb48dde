package video

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/scoutkz/internal/common"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
	"github.com/DhavalSuthar-24/scoutkz/pkg/responses"
)

// FormField is the multipart field carrying the video file.
const FormField = "video"

// multipart framing and the title/description fields on top of the file
const formOverhead = 1 << 20

type VideoController struct {
	service *VideoService
}

func NewVideoController(service *VideoService) *VideoController {
	return &VideoController{service: service}
}

// Upload godoc
// @Summary Upload a highlight video
// @Description Requires a player profile. At most MAX_VIDEOS_PER_PLAYER videos per profile.
// @Tags Videos
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param video formData file true "Video file (video/*)"
// @Param title formData string false "Title" default(Video)
// @Param description formData string false "Description"
// @Success 201 {object} VideoResponse
// @Failure 400 {object} responses.ErrorResponse "Missing file, no profile or quota reached"
// @Failure 403 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse "Upload to video host failed"
// @Router /videos/upload [post]
func (vc *VideoController) Upload(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	if limit := vc.service.MaxBytes(); limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+formOverhead)
	}

	in := UploadInput{}
	fh, err := c.FormFile(FormField)
	switch {
	case err == nil:
		f, openErr := fh.Open()
		if openErr != nil {
			responses.HandleError(c, apperr.Internal("could not read uploaded file", openErr))
			return
		}
		defer f.Close()
		in.File = &UploadFile{
			Reader:      f,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Filename:    fh.Filename,
		}
	case errors.Is(err, http.ErrMissingFile):
		// reported by the service as a missing file
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			responses.HandleError(c, apperr.Validation("file is too large"))
			return
		}
		responses.HandleError(c, apperr.Validation("invalid multipart form"))
		return
	}
	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")

	v, err := vc.service.Upload(c.Request.Context(), id.ID, in)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, VideoResponse{Message: "Video uploaded", Video: v})
}

// ListMine godoc
// @Summary The caller's videos, newest first
// @Tags Videos
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Video
// @Router /videos/my-videos [get]
func (vc *VideoController) ListMine(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	videos, err := vc.service.ListMine(c.Request.Context(), id.ID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// ListByPlayer godoc
// @Summary A player's videos, newest first
// @Tags Videos
// @Security BearerAuth
// @Produce json
// @Param playerId path int true "Player ID"
// @Success 200 {array} Video
// @Router /videos/player/{playerId} [get]
func (vc *VideoController) ListByPlayer(c *gin.Context) {
	playerID, err := common.ParseIDParam(c, "playerId")
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	videos, err := vc.service.ListByPlayer(c.Request.Context(), playerID)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Update godoc
// @Summary Edit a video's title or description
// @Tags Videos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param video body UpdateRequest true "Fields to change"
// @Success 200 {object} VideoResponse
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse
// @Router /videos/{id} [put]
func (vc *VideoController) Update(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	videoID, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationFailed(c, err)
		return
	}

	v, err := vc.service.Update(c.Request.Context(), videoID, id.ID, id.Role, req)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, VideoResponse{Message: "Video updated", Video: v})
}

// Delete godoc
// @Summary Delete a video
// @Tags Videos
// @Security BearerAuth
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse
// @Router /videos/{id} [delete]
func (vc *VideoController) Delete(c *gin.Context) {
	id, err := common.CurrentIdentity(c)
	if err != nil {
		responses.HandleError(c, err)
		return
	}
	videoID, err := common.ParseIDParam(c, "id")
	if err != nil {
		responses.HandleError(c, err)
		return
	}

	if err := vc.service.Delete(c.Request.Context(), videoID, id.ID, id.Role); err != nil {
		responses.HandleError(c, err)
		return
	}
	responses.SendMessage(c, http.StatusOK, "Video deleted")
}
