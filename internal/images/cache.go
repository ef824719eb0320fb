package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"drivesync-backend/internal/logger"
)

var ErrNotCached = errors.New("image not cached")

// Cache mirrors car images from their external URLs onto the local
// filesystem so listing views are not blocked on third-party hosts.
// Fetches are fire-and-forget: one goroutine per image, no ordering
// guarantee across images, failures only logged.
type Cache struct {
	dir    string
	client *http.Client

	mu       sync.Mutex
	inflight map[int32]struct{}
}

// NewCache creates a cache rooted at dir, creating it if needed.
func NewCache(dir string, fetchTimeout time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image cache directory: %w", err)
	}
	return &Cache{
		dir:      dir,
		client:   &http.Client{Timeout: fetchTimeout},
		inflight: make(map[int32]struct{}),
	}, nil
}

// Prefetch downloads the image for a car in the background. Concurrent
// prefetches of the same car are collapsed; an already cached image is
// left alone.
func (c *Cache) Prefetch(carID int32, url string) {
	if url == "" {
		return
	}
	if _, err := os.Stat(c.path(carID)); err == nil {
		return
	}

	c.mu.Lock()
	if _, busy := c.inflight[carID]; busy {
		c.mu.Unlock()
		return
	}
	c.inflight[carID] = struct{}{}
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.inflight, carID)
			c.mu.Unlock()
		}()
		if err := c.fetch(context.Background(), carID, url); err != nil {
			logger.Warn("Car image prefetch failed", "car_id", carID, "url", url, "error", err)
		}
	}()
}

// Open returns a reader over the cached image for a car, fetching it
// synchronously on a miss.
func (c *Cache) Open(ctx context.Context, carID int32, url string) (io.ReadCloser, error) {
	if f, err := os.Open(c.path(carID)); err == nil {
		return f, nil
	}
	if url == "" {
		return nil, ErrNotCached
	}
	if err := c.fetch(ctx, carID, url); err != nil {
		return nil, err
	}
	return os.Open(c.path(carID))
}

func (c *Cache) fetch(ctx context.Context, carID int32, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	// Some image hosts reject requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("unexpected content type %q", ct)
	}

	// Write to a temp file first so readers never see a partial image.
	tmp, err := os.CreateTemp(c.dir, "fetch-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path(carID))
}

func (c *Cache) path(carID int32) string {
	return filepath.Join(c.dir, fmt.Sprintf("car-%d", carID))
}
