package infra

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBlobStore(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalBlobStore(dir, "/uploads/")

	path, err := s.Upload(context.Background(), "tour-activity-images/a.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "tour-activity-images/a.jpg", path)

	b, err := os.ReadFile(filepath.Join(dir, "tour-activity-images", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(b))
	assert.Equal(t, "/uploads/tour-activity-images/a.jpg", s.PublicURL(path))

	_, err = s.Upload(context.Background(), "tour-activity-images/a.jpg", "image/jpeg", strings.NewReader("again"))
	assert.Error(t, err, "existing objects are not overwritten")
}

func TestLocalBlobStore_StaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalBlobStore(dir, "/uploads")

	path, err := s.Upload(context.Background(), "../../etc/x.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "etc/x.png", path)
	_, err = os.Stat(filepath.Join(dir, "etc", "x.png"))
	assert.NoError(t, err)
}

func TestHTTPBlobStore(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)

	var gotAuth, gotType, gotBody string
	httpmock.RegisterResponder(http.MethodPut, "https://store.example.com/storage/v1/object/workspace-files/tour-activity-images/a.jpg",
		func(req *http.Request) (*http.Response, error) {
			gotAuth = req.Header.Get("Authorization")
			gotType = req.Header.Get("Content-Type")
			b, _ := io.ReadAll(req.Body)
			gotBody = string(b)
			return httpmock.NewStringResponse(http.StatusOK, `{"Key":"workspace-files/tour-activity-images/a.jpg"}`), nil
		})

	s := NewHTTPBlobStore("https://store.example.com/storage/v1/", "workspace-files", "secret", client)
	path, err := s.Upload(context.Background(), "tour-activity-images/a.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "tour-activity-images/a.jpg", path)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, "jpeg-bytes", gotBody)
	assert.Equal(t,
		"https://store.example.com/storage/v1/object/public/workspace-files/tour-activity-images/a.jpg",
		s.PublicURL(path))
}

func TestHTTPBlobStore_ErrorStatus(t *testing.T) {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)

	httpmock.RegisterResponder(http.MethodPut, `=~^https://store\.example\.com/object/`,
		httpmock.NewStringResponder(http.StatusForbidden, `{"error":"new row violates row-level security policy"}`))

	s := NewHTTPBlobStore("https://store.example.com", "workspace-files", "bad", client)
	_, err := s.Upload(context.Background(), "a.jpg", "image/jpeg", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
