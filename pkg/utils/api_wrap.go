package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/Corner-venturo/Corner-sub004/pkg/notify"
	"github.com/gin-gonic/gin"
)

const (
	TraceIDKey   = "trace_id"
	NoticesKey   = "notices"
	UserIDKey    = "user_id"
	WorkspaceKey = "workspace_id"
)

type APIResponse struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	TraceID string          `json:"trace_id,omitempty"`
	Data    interface{}     `json:"data,omitempty"`
	Notices []notify.Notice `json:"notices,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

func notices(c *gin.Context) []notify.Notice {
	v, ok := c.Get(NoticesKey)
	if !ok {
		return nil
	}
	if col, ok := v.(*notify.Collector); ok {
		return col.Notices()
	}
	return nil
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusOK, data, message)
}

func RespondStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
		Notices: notices(c),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Notices: notices(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTourNotFound):
		RespondError(c, http.StatusNotFound, "Tour not found")
	case errors.Is(err, ErrSelectorNotFound):
		RespondError(c, http.StatusNotFound, "Selector session not found or expired")
	case errors.Is(err, ErrDayIndexOutOfRange):
		RespondError(c, http.StatusNotFound, "Day not found")
	case errors.Is(err, ErrActivityIndexOutOfRange):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrImageIndexOutOfRange):
		RespondError(c, http.StatusNotFound, "Image not found")
	case errors.Is(err, ErrRecommendationIndexOutOfRange):
		RespondError(c, http.StatusNotFound, "Recommendation not found")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: resource belongs to another workspace")
	case errors.Is(err, ErrFirstDayAlternative):
		RespondError(c, http.StatusUnprocessableEntity, "The first day cannot be an alternative day")
	case errors.Is(err, ErrDaysNotAdjacent):
		RespondError(c, http.StatusUnprocessableEntity, "Only neighbouring days can be swapped")
	case errors.Is(err, ErrNoDays):
		RespondError(c, http.StatusUnprocessableEntity, "Tour has no days")
	case errors.Is(err, ErrNotPromotable):
		RespondError(c, http.StatusUnprocessableEntity, "Activity is already linked to the catalog")
	case errors.Is(err, ErrSelectionEmpty):
		RespondError(c, http.StatusUnprocessableEntity, "Nothing selected")
	case errors.Is(err, ErrActivityChanged):
		RespondError(c, http.StatusConflict, "Activity changed while saving to the catalog; try again")
	case errors.Is(err, ErrSelectorBusy):
		RespondError(c, http.StatusConflict, "Selection is already being applied")
	case errors.Is(err, ErrSelectorClosed):
		RespondError(c, http.StatusConflict, "Selector session is closed")
	case errors.Is(err, ErrCountryRequired):
		RespondError(c, http.StatusBadRequest, "Choose a country first")
	case errors.Is(err, ErrInvalidField):
		RespondError(c, http.StatusBadRequest, "Unknown activity field")
	case errors.Is(err, ErrInvalidOrder):
		RespondError(c, http.StatusBadRequest, "Order must list every current index exactly once")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnsupportedFile):
		RespondError(c, http.StatusUnsupportedMediaType, "Only image files can be uploaded")
	case errors.Is(err, ErrUploadFailed):
		log.Printf("Upload error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upload failed")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
