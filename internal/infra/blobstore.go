package infra

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Corner-venturo/Corner-sub004/pkg/config"
)

// BlobStore is the file storage behind uploaded images. Upload returns the
// stored object path, PublicURL the address browsers load it from.
type BlobStore interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error)
	PublicURL(path string) string
}

func NewBlobStore(cfg *config.Config) BlobStore {
	if cfg.BlobBackend == config.BlobBackendHTTP {
		return NewHTTPBlobStore(cfg.BlobHTTPEndpoint, cfg.BlobBucket, cfg.BlobHTTPToken, nil)
	}
	return NewLocalBlobStore(cfg.BlobLocalDir, cfg.BlobPublicBaseURL)
}

// cleanObjectPath strips leading slashes and any ".." segments.
func cleanObjectPath(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean("/"+p)), "/")
}

type LocalBlobStore struct {
	dir     string
	baseURL string
}

func NewLocalBlobStore(dir, baseURL string) *LocalBlobStore {
	return &LocalBlobStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalBlobStore) Dir() string { return s.dir }

func (s *LocalBlobStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel := cleanObjectPath(path)
	full := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", rel, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("write %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return rel, nil
}

func (s *LocalBlobStore) PublicURL(path string) string {
	return s.baseURL + "/" + cleanObjectPath(path)
}

// HTTPBlobStore talks to an object storage REST endpoint
// ({endpoint}/object/{bucket}/{path}) with a bearer token.
type HTTPBlobStore struct {
	endpoint string
	bucket   string
	token    string
	client   *http.Client
}

func NewHTTPBlobStore(endpoint, bucket, token string, client *http.Client) *HTTPBlobStore {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &HTTPBlobStore{
		endpoint: strings.TrimRight(endpoint, "/"),
		bucket:   bucket,
		token:    token,
		client:   client,
	}
}

func (s *HTTPBlobStore) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	rel := cleanObjectPath(path)
	url := fmt.Sprintf("%s/object/%s/%s", s.endpoint, s.bucket, rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", rel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload %s: status %d: %s", rel, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return rel, nil
}

func (s *HTTPBlobStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", s.endpoint, s.bucket, cleanObjectPath(path))
}
