package video

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
	"github.com/DhavalSuthar-24/scoutkz/pkg/videohost"
)

// Host is the external service that stores video files.
type Host interface {
	Upload(ctx context.Context, u videohost.Upload) (*videohost.Asset, error)
	Delete(ctx context.Context, externalID string) error
}

type VideoService struct {
	repo      VideoRepository
	players   player.PlayerRepository
	host      Host
	maxVideos int
	maxBytes  int64
}

func NewVideoService(repo VideoRepository, players player.PlayerRepository, host Host, maxVideos int, maxBytes int64) *VideoService {
	return &VideoService{
		repo:      repo,
		players:   players,
		host:      host,
		maxVideos: maxVideos,
		maxBytes:  maxBytes,
	}
}

func (s *VideoService) MaxBytes() int64 { return s.maxBytes }

// Upload checks, in order, that a video file is present, that the caller
// has a player profile and that the profile is under quota. The row is
// written only after the host accepted the file.
func (s *VideoService) Upload(ctx context.Context, userID uint, in UploadInput) (*Video, error) {
	if in.File == nil || in.File.Reader == nil {
		return nil, apperr.Validation("video file is required")
	}
	if !strings.HasPrefix(strings.ToLower(in.File.ContentType), "video/") {
		return nil, apperr.Validation("only video files are allowed")
	}
	if s.maxBytes > 0 && in.File.Size > s.maxBytes {
		return nil, apperr.Validation(fmt.Sprintf("file is too large, max %d MB", s.maxBytes>>20))
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = DefaultTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return nil, apperr.Validation(fmt.Sprintf("title must be at most %d characters", MaxTitleLen))
	}
	description := strings.TrimSpace(in.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return nil, apperr.Validation(fmt.Sprintf("description must be at most %d characters", MaxDescriptionLen))
	}

	playerID, err := s.players.IDByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}
	if playerID == 0 {
		return nil, apperr.Validation("create a player profile first")
	}

	count, err := s.repo.CountByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}
	if count >= int64(s.maxVideos) {
		return nil, apperr.Validation(fmt.Sprintf("video limit reached, max %d videos per player", s.maxVideos))
	}

	asset, err := s.host.Upload(ctx, videohost.Upload{
		Body:        in.File.Reader,
		Size:        in.File.Size,
		ContentType: in.File.ContentType,
		Filename:    in.File.Filename,
		Title:       title,
		PlayerID:    playerID,
	})
	if err != nil {
		return nil, apperr.Internal("video upload failed", err)
	}

	v := &Video{
		PlayerID:    playerID,
		Title:       title,
		Description: description,
		VideoURL:    asset.URL,
		ExternalID:  asset.ExternalID,
		Duration:    asset.Duration,
		FileSize:    asset.Bytes,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		log.Printf("video: row insert failed, remote asset %s is orphaned: %v", asset.ExternalID, err)
		return nil, apperr.FromStore(fmt.Errorf("create video: %w", err))
	}
	return v, nil
}

// ListMine returns the caller's videos, or an empty list without a profile.
func (s *VideoService) ListMine(ctx context.Context, userID uint) ([]Video, error) {
	playerID, err := s.players.IDByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}
	if playerID == 0 {
		return []Video{}, nil
	}
	return s.ListByPlayer(ctx, playerID)
}

func (s *VideoService) ListByPlayer(ctx context.Context, playerID uint) ([]Video, error) {
	videos, err := s.repo.FindByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if videos == nil {
		videos = []Video{}
	}
	return videos, nil
}

// authorize loads the video and checks the caller may change it.
func (s *VideoService) authorize(ctx context.Context, videoID, userID uint, role user.Role) (*VideoWithOwner, error) {
	v, err := s.repo.FindByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	if v == nil {
		return nil, apperr.NotFound("video not found")
	}
	if v.OwnerUserID != userID && !role.Can(user.CapModerateVideos) {
		return nil, apperr.Forbidden("access denied")
	}
	return v, nil
}

func (s *VideoService) Update(ctx context.Context, videoID, userID uint, role user.Role, req UpdateRequest) (*Video, error) {
	v, err := s.authorize(ctx, videoID, userID, role)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperr.Validation("title must not be empty")
		}
		v.Title = title
	}
	if req.Description != nil {
		v.Description = strings.TrimSpace(*req.Description)
	}
	v.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &v.Video); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("update video: %w", err))
	}
	return &v.Video, nil
}

// Delete removes the video row. Failure to delete the remote asset is
// logged and does not block the local delete.
func (s *VideoService) Delete(ctx context.Context, videoID, userID uint, role user.Role) error {
	v, err := s.authorize(ctx, videoID, userID, role)
	if err != nil {
		return err
	}

	if err := s.host.Delete(ctx, v.ExternalID); err != nil {
		log.Printf("video: remote delete of %s failed, continuing: %v", v.ExternalID, err)
	}
	if err := s.repo.Delete(ctx, v.ID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}
