// Package videohost stores uploaded videos with an external host: an
// S3-compatible bucket (AWS S3, Cloudflare R2, MinIO) stores files as-is,
// Cloudinary additionally transcodes them and reports their duration.
package videohost

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/DhavalSuthar-24/scoutkz/config"
)

// defaultExt names objects uploaded without a file extension.
const defaultExt = ".mp4"

// Upload is one file to be stored.
type Upload struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Filename    string
	Title       string
	PlayerID    uint
}

// Asset describes a stored video. Duration is 0 when the host has not
// reported it yet.
type Asset struct {
	URL        string
	ExternalID string
	Duration   int
	Bytes      int64
}

type S3Host struct {
	client        *s3.Client
	bucket        string
	folder        string
	publicBaseURL string
}

func NewS3Host(ctx context.Context, cfg config.Storage) (*S3Host, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithHTTPClient(awshttp.NewBuildableClient().WithTimeout(cfg.Timeout)),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		// Some S3-compatible stores reject the SDK's default request checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		if cfg.Endpoint != "" {
			base = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &S3Host{
		client:        client,
		bucket:        cfg.Bucket,
		folder:        strings.Trim(cfg.Folder, "/"),
		publicBaseURL: base,
	}, nil
}

// ObjectKey builds <folder>/<player>/<uuid>[-<title-slug>]<ext>.
func ObjectKey(folder string, u Upload) string {
	name := uuid.NewString()
	if s := slug.Make(u.Title); s != "" {
		if len(s) > 60 {
			s = strings.TrimRight(s[:60], "-")
		}
		name += "-" + s
	}
	ext := strings.ToLower(path.Ext(u.Filename))
	if ext == "" {
		ext = defaultExt
	}
	return path.Join(folder, strconv.FormatUint(uint64(u.PlayerID), 10), name+ext)
}

// Upload streams the file to the bucket and returns its public location.
func (h *S3Host) Upload(ctx context.Context, u Upload) (*Asset, error) {
	key := ObjectKey(h.folder, u)

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.bucket),
		Key:           aws.String(key),
		Body:          u.Body,
		ContentLength: aws.Int64(u.Size),
		ContentType:   aws.String(u.ContentType),
		Metadata: map[string]string{
			"player-id": strconv.FormatUint(uint64(u.PlayerID), 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	return &Asset{
		URL:        h.publicBaseURL + "/" + key,
		ExternalID: key,
		Bytes:      u.Size,
	}, nil
}

// Delete removes the stored object. Deleting a missing key is not an error.
func (h *S3Host) Delete(ctx context.Context, externalID string) error {
	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(externalID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete video %s: %w", externalID, err)
	}
	return nil
}
