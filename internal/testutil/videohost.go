package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/DhavalSuthar-24/scoutkz/pkg/videohost"
)

// FakeHost records uploads and deletes instead of calling a real bucket.
type FakeHost struct {
	mu      sync.Mutex
	n       int
	Uploads []videohost.Upload
	Deleted []string

	UploadErr error
	DeleteErr error
}

func (h *FakeHost) Upload(_ context.Context, u videohost.Upload) (*videohost.Asset, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.UploadErr != nil {
		return nil, h.UploadErr
	}
	size, err := io.Copy(io.Discard, u.Body)
	if err != nil {
		return nil, err
	}
	h.n++
	h.Uploads = append(h.Uploads, u)
	id := fmt.Sprintf("scout-kz/videos/%d/asset-%d.mp4", u.PlayerID, h.n)
	return &videohost.Asset{
		URL:        "https://cdn.test/" + id,
		ExternalID: id,
		Duration:   30,
		Bytes:      size,
	}, nil
}

func (h *FakeHost) Delete(_ context.Context, externalID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Deleted = append(h.Deleted, externalID)
	return h.DeleteErr
}
