package controllers

import (
	"fmt"
	"net/http"

	"github.com/Corner-venturo/Corner-sub004/internal/models/request_models"
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

type LibraryController struct {
	libraryService services.ImageLibraryServiceInterface
}

func NewLibraryController(libraryService services.ImageLibraryServiceInterface) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

// UploadActivityImage godoc
// @Summary Upload an activity image
// @Description Stores the image, sets it on the activity and suggests a library name
// @Tags Library
// @Accept multipart/form-data
// @Produce json
// @Param tourId path string true "Tour ID"
// @Param dayIndex path int true "Day index"
// @Param actIndex path int true "Activity index"
// @Param file formData file true "Image file"
// @Success 200 {object} response_models.UploadImageResponse
// @Failure 415 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tours/{tourId}/days/{dayIndex}/activities/{actIndex}/image [post]
func (l *LibraryController) UploadActivityImage(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	actIndex, ok := indexParam(c, "actIndex")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "File is required")
		return
	}
	if header.Size > maxUploadBytes {
		utils.RespondError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("File exceeds %d MB", maxUploadBytes>>20))
		return
	}
	file, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cannot read file")
		return
	}
	defer file.Close()

	resp, err := l.libraryService.UploadActivityImage(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, actIndex, services.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Image uploaded")
}

func (l *LibraryController) SaveToLibrary(c *gin.Context) {
	var req request_models.SaveToLibraryRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := l.libraryService.SaveToLibrary(c.Request.Context(), workspaceID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, entry, "Saved to library")
}

func (l *LibraryController) LatestByName(c *gin.Context) {
	entry, err := l.libraryService.LatestByName(c.Request.Context(), workspaceID(c), c.Query("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if entry == nil {
		utils.RespondError(c, http.StatusNotFound, "No library image with that name")
		return
	}
	utils.RespondSuccess(c, entry, "Library image fetched")
}
