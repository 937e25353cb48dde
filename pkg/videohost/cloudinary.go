package videohost

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"

	"github.com/DhavalSuthar-24/scoutkz/config"
)

// Eager transformation applied to every upload: quality-tuned MP4.
const cloudinaryEager = "q_auto:good/f_mp4"

type CloudinaryHost struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryHost(cfg config.Cloudinary) (*CloudinaryHost, error) {
	conf, err := cldconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudinary config: %w", err)
	}
	if cfg.UploadPrefix != "" {
		conf.API.UploadPrefix = strings.TrimRight(cfg.UploadPrefix, "/")
	}
	cld, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryHost{cld: cld, folder: strings.Trim(cfg.Folder, "/")}, nil
}

// Upload sends the file as a video resource into <folder>/<player>. The
// MP4 rendition is produced asynchronously; the original is served until
// then.
func (h *CloudinaryHost) Upload(ctx context.Context, u Upload) (*Asset, error) {
	res, err := h.cld.Upload.Upload(ctx, u.Body, uploader.UploadParams{
		Folder:         path.Join(h.folder, strconv.FormatUint(uint64(u.PlayerID), 10)),
		ResourceType:   "video",
		Eager:          cloudinaryEager,
		EagerAsync:     api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload video: %s", res.Error.Message)
	}

	size := int64(res.Bytes)
	if size == 0 {
		size = u.Size
	}
	return &Asset{
		URL:        res.SecureURL,
		ExternalID: res.PublicID,
		Duration:   durationOf(res.Response),
		Bytes:      size,
	}, nil
}

// durationOf pulls the "duration" field, in seconds, out of the raw upload
// response. It is 0 for responses that lack it.
func durationOf(raw interface{}) int {
	b, err := json.Marshal(raw)
	if err != nil {
		return 0
	}
	var v struct {
		Duration float64 `json:"duration"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return 0
	}
	return int(math.Round(v.Duration))
}

// Delete destroys the video resource. An unknown public id is not an error.
func (h *CloudinaryHost) Delete(ctx context.Context, externalID string) error {
	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     externalID,
		ResourceType: "video",
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to delete video %s: %w", externalID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("failed to delete video %s: %s", externalID, res.Error.Message)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("failed to delete video %s: %s", externalID, res.Result)
	}
	return nil
}
