package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/Corner-venturo/Corner-sub004/internal/infra"
	"github.com/Corner-venturo/Corner-sub004/internal/itinerary"
	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/request_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/response_models"
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/pkg/notify"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	activityImageDir     = "tour-activity-images"
	defaultSuggestedName = "景點圖片"
	defaultLibraryName   = "未命名圖片"
)

var libraryActivityTags = []string{"景點", "活動"}

// ImageUpload is one file taken from a multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type ImageLibraryServiceInterface interface {
	UploadActivityImage(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int, upload ImageUpload) (*response_models.UploadImageResponse, error)
	SaveToLibrary(ctx context.Context, workspaceID string, req request_models.SaveToLibraryRequest) (*response_models.LibraryEntryResponse, error)
	LatestByName(ctx context.Context, workspaceID, name string) (*response_models.LibraryEntryResponse, error)
}

type ImageLibraryService struct {
	libraryRepo repositories.ImageLibraryRepository
	blobs       infra.BlobStore
	itinerary   ItineraryServiceInterface
}

func NewImageLibraryService(
	libraryRepo repositories.ImageLibraryRepository,
	blobs infra.BlobStore,
	itinerarySvc ItineraryServiceInterface,
) ImageLibraryServiceInterface {
	return &ImageLibraryService{
		libraryRepo: libraryRepo,
		blobs:       blobs,
		itinerary:   itinerarySvc,
	}
}

// uploadExt picks the stored extension from the file name, falling back to
// the content type's subtype.
func uploadExt(filename, contentType string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext != "" {
		return ext
	}
	sub := strings.TrimPrefix(strings.ToLower(contentType), "image/")
	if i := strings.IndexAny(sub, ";+"); i >= 0 {
		sub = sub[:i]
	}
	if sub == "jpeg" {
		return "jpg"
	}
	return sub
}

// activityImagePath is activity-{day}-{activity}_{unixms}_{rand6}.{ext}
// with one-based day and activity numbers.
func activityImagePath(dayIndex, actIndex int, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	name := fmt.Sprintf("activity-%d-%d_%d_%s", dayIndex+1, actIndex+1, utils.NowUnixMillis(), suffix)
	if ext != "" {
		name += "." + ext
	}
	return activityImageDir + "/" + name
}

func (s *ImageLibraryService) UploadActivityImage(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int, upload ImageUpload) (*response_models.UploadImageResponse, error) {
	tour, err := s.itinerary.GetTour(ctx, workspaceID, tourID)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(tour.Days) {
		return nil, utils.ErrDayIndexOutOfRange
	}
	acts := tour.Days[dayIndex].Activities
	if actIndex < 0 || actIndex >= len(acts) {
		return nil, utils.ErrActivityIndexOutOfRange
	}

	processed, err := infra.NormalizeImage(upload.Body, upload.ContentType, uploadExt(upload.Filename, upload.ContentType))
	if err != nil {
		if errors.Is(err, infra.ErrNotAnImage) {
			return nil, utils.ErrUnsupportedFile
		}
		log.Printf("[library] read upload %q: %v", upload.Filename, err)
		notify.FromContext(ctx).Error("圖片上傳失敗")
		return nil, utils.ErrUploadFailed
	}

	path := activityImagePath(dayIndex, actIndex, processed.Ext)
	stored, err := s.blobs.Upload(ctx, path, processed.ContentType, bytes.NewReader(processed.Body))
	if err != nil {
		log.Printf("[library] upload %s: %v", path, err)
		notify.FromContext(ctx).Error("圖片上傳失敗")
		return nil, utils.ErrUploadFailed
	}
	publicURL := s.blobs.PublicURL(stored)

	var thumbURL string
	if processed.Thumbnail != nil {
		thumbPath := activityImageDir + "/thumbs/" + filepath.Base(stored)
		thumb, err := s.blobs.Upload(ctx, thumbPath, processed.ContentType, bytes.NewReader(processed.Thumbnail))
		if err != nil {
			log.Printf("[library] upload thumbnail %s: %v", thumbPath, err)
		} else {
			thumbURL = s.blobs.PublicURL(thumb)
		}
	}

	updated, err := s.itinerary.UpdateActivity(ctx, workspaceID, tourID, dayIndex, actIndex, itinerary.FieldImage, publicURL)
	if err != nil {
		return nil, err
	}
	notify.FromContext(ctx).Success("圖片上傳成功")

	suggested := strings.TrimSpace(acts[actIndex].Title)
	if suggested == "" {
		suggested = defaultSuggestedName
	}
	return &response_models.UploadImageResponse{
		FilePath:      stored,
		PublicURL:     publicURL,
		ThumbnailURL:  thumbURL,
		SuggestedName: suggested,
		Tour:          updated,
	}, nil
}

func (s *ImageLibraryService) SaveToLibrary(ctx context.Context, workspaceID string, req request_models.SaveToLibraryRequest) (*response_models.LibraryEntryResponse, error) {
	if strings.TrimSpace(req.FilePath) == "" || strings.TrimSpace(req.PublicURL) == "" {
		return nil, fmt.Errorf("%w: file_path and public_url are required", utils.ErrInvalidInput)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultLibraryName
	}
	tags, err := json.Marshal(libraryActivityTags)
	if err != nil {
		return nil, err
	}

	entry := &db_models.ImageLibraryEntry{
		WorkspaceID: workspaceID,
		Name:        name,
		FilePath:    req.FilePath,
		PublicURL:   req.PublicURL,
		Category:    LibraryCategoryActivity,
		Tags:        datatypes.JSON(tags),
	}
	if _, err := s.libraryRepo.Create(ctx, entry); err != nil {
		log.Printf("[library] save %q: %v", name, err)
		notify.FromContext(ctx).Error("儲存到圖庫失敗")
		return nil, utils.ErrDatabaseError
	}
	notify.FromContext(ctx).Success("已儲存到圖庫")
	return libraryEntryResponse(entry), nil
}

func (s *ImageLibraryService) LatestByName(ctx context.Context, workspaceID, name string) (*response_models.LibraryEntryResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", utils.ErrInvalidInput)
	}
	entry, err := s.libraryRepo.LatestByName(ctx, workspaceID, LibraryCategoryActivity, name)
	if err != nil {
		log.Printf("[library] latest %q: %v", name, err)
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, nil
	}
	return libraryEntryResponse(entry), nil
}

func libraryEntryResponse(e *db_models.ImageLibraryEntry) *response_models.LibraryEntryResponse {
	tags := []string{}
	if len(e.Tags) > 0 {
		if err := json.Unmarshal(e.Tags, &tags); err != nil {
			log.Printf("[library] decode tags of %s: %v", e.ID, err)
		}
	}
	return &response_models.LibraryEntryResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		FilePath:  e.FilePath,
		PublicURL: e.PublicURL,
		Category:  e.Category,
		Tags:      tags,
		CreatedAt: utils.FormatUnixSeconds(e.CreatedAt),
	}
}
