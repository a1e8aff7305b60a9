package controllers

import (
	"net/http"

	"github.com/Corner-venturo/Corner-sub004/internal/itinerary"
	"github.com/Corner-venturo/Corner-sub004/internal/models/request_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/response_models"
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TourController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewTourController(itineraryService services.ItineraryServiceInterface) *TourController {
	return &TourController{
		itineraryService: itineraryService,
	}
}

// respondTour is the common tail of every day-list edit.
func respondTour(c *gin.Context, tour *response_models.TourResponse, err error, message string) {
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tour, message)
}

// CreateTour godoc
// @Summary Create a tour
// @Description Create a tour with an optional initial day list
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body request_models.CreateTourRequest true "Tour"
// @Success 201 {object} response_models.TourResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tours [post]
func (t *TourController) CreateTour(c *gin.Context) {
	var req request_models.CreateTourRequest
	if !bindJSON(c, &req) {
		return
	}

	tour, err := t.itineraryService.CreateTour(c.Request.Context(), workspaceID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, tour, "Tour created successfully")
}

// GetTour godoc
// @Summary Get a tour
// @Description Day list with derived labels and stats
// @Tags Tour
// @Produce json
// @Param tourId path string true "Tour ID"
// @Success 200 {object} response_models.TourResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tours/{tourId} [get]
func (t *TourController) GetTour(c *gin.Context) {
	tour, err := t.itineraryService.GetTour(c.Request.Context(), workspaceID(c), c.Param("tourId"))
	respondTour(c, tour, err, "Tour fetched successfully")
}

// ---------- Days ----------

func (t *TourController) AddDay(c *gin.Context) {
	var req request_models.AddDayRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.AddDay(c.Request.Context(), workspaceID(c), c.Param("tourId"), req.IsAlternative)
	respondTour(c, tour, err, "Day added")
}

func (t *TourController) UpdateDay(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	var req request_models.UpdateDayRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.UpdateDay(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, req.Patch())
	respondTour(c, tour, err, "Day updated")
}

// RemoveLastDay godoc
// @Summary Remove the last day
// @Tags Tour
// @Produce json
// @Param tourId path string true "Tour ID"
// @Success 200 {object} response_models.TourResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tours/{tourId}/days/last [delete]
func (t *TourController) RemoveLastDay(c *gin.Context) {
	tour, err := t.itineraryService.RemoveLastDay(c.Request.Context(), workspaceID(c), c.Param("tourId"))
	respondTour(c, tour, err, "Day removed")
}

func (t *TourController) SwapDays(c *gin.Context) {
	var req request_models.SwapDaysRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.SwapDays(c.Request.Context(), workspaceID(c), c.Param("tourId"), req.A, req.B)
	respondTour(c, tour, err, "Days swapped")
}

func (t *TourController) MoveDay(c *gin.Context) {
	var req request_models.MoveRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.MoveDay(c.Request.Context(), workspaceID(c), c.Param("tourId"), req.FromID, req.ToID)
	respondTour(c, tour, err, "Day moved")
}

// ---------- Activities ----------

func (t *TourController) AddActivity(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	tour, err := t.itineraryService.AddActivity(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex)
	respondTour(c, tour, err, "Activity added")
}

// UpdateActivity godoc
// @Summary Set one activity field
// @Tags Tour
// @Accept json
// @Produce json
// @Param tourId path string true "Tour ID"
// @Param dayIndex path int true "Day index"
// @Param actIndex path int true "Activity index"
// @Param request body request_models.UpdateActivityRequest true "Field and value"
// @Success 200 {object} response_models.TourResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tours/{tourId}/days/{dayIndex}/activities/{actIndex} [patch]
func (t *TourController) UpdateActivity(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	actIndex, ok := indexParam(c, "actIndex")
	if !ok {
		return
	}
	var req request_models.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.UpdateActivity(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, actIndex, req.Field, req.Value)
	respondTour(c, tour, err, "Activity updated")
}

func (t *TourController) RemoveActivity(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	actIndex, ok := indexParam(c, "actIndex")
	if !ok {
		return
	}
	tour, err := t.itineraryService.RemoveActivity(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, actIndex)
	respondTour(c, tour, err, "Activity removed")
}

func (t *TourController) ReorderActivities(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	var req request_models.ReorderActivitiesRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.ReorderActivities(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, req)
	respondTour(c, tour, err, "Activities reordered")
}

func (t *TourController) MoveActivity(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	var req request_models.MoveRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.MoveActivity(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, req.FromID, req.ToID)
	respondTour(c, tour, err, "Activity moved")
}

func (t *TourController) SetActivityImagePosition(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	actIndex, ok := indexParam(c, "actIndex")
	if !ok {
		return
	}
	var req request_models.ImagePositionRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.SetActivityImagePosition(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, actIndex, req)
	respondTour(c, tour, err, "Image position saved")
}

// PromoteActivity godoc
// @Summary Save an activity to the attraction catalog
// @Description Only manual or unlinked activities with a title qualify
// @Tags Tour
// @Produce json
// @Param tourId path string true "Tour ID"
// @Param dayIndex path int true "Day index"
// @Param actIndex path int true "Activity index"
// @Success 200 {object} response_models.PromoteActivityResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tours/{tourId}/days/{dayIndex}/activities/{actIndex}/promote [post]
func (t *TourController) PromoteActivity(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	actIndex, ok := indexParam(c, "actIndex")
	if !ok {
		return
	}
	resp, err := t.itineraryService.PromoteActivity(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, actIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Activity saved to catalog")
}

// ---------- Day images ----------

func (t *TourController) AddDayImage(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	var req request_models.DayImageRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.AddDayImage(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, req.URL)
	respondTour(c, tour, err, "Image added")
}

func (t *TourController) UpdateDayImage(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	imageIndex, ok := indexParam(c, "imageIndex")
	if !ok {
		return
	}
	var req request_models.DayImageRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.UpdateDayImage(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, imageIndex, req.URL)
	respondTour(c, tour, err, "Image updated")
}

func (t *TourController) SetDayImagePosition(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	imageIndex, ok := indexParam(c, "imageIndex")
	if !ok {
		return
	}
	var req request_models.ImagePositionRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.SetDayImagePosition(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, imageIndex, req)
	respondTour(c, tour, err, "Image position saved")
}

func (t *TourController) RemoveDayImage(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	imageIndex, ok := indexParam(c, "imageIndex")
	if !ok {
		return
	}
	tour, err := t.itineraryService.RemoveDayImage(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, imageIndex)
	respondTour(c, tour, err, "Image removed")
}

func (t *TourController) MoveDayImage(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	var req request_models.MoveRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.MoveDayImage(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, req.FromID, req.ToID)
	respondTour(c, tour, err, "Image moved")
}

// ---------- Recommendations ----------

func (t *TourController) AddRecommendation(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	tour, err := t.itineraryService.AddRecommendation(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex)
	respondTour(c, tour, err, "Recommendation added")
}

func (t *TourController) UpdateRecommendation(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	recIndex, ok := indexParam(c, "recIndex")
	if !ok {
		return
	}
	var req request_models.RecommendationRequest
	if !bindJSON(c, &req) {
		return
	}
	tour, err := t.itineraryService.UpdateRecommendation(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, recIndex, req.Value)
	respondTour(c, tour, err, "Recommendation updated")
}

func (t *TourController) RemoveRecommendation(c *gin.Context) {
	dayIndex, ok := indexParam(c, "dayIndex")
	if !ok {
		return
	}
	recIndex, ok := indexParam(c, "recIndex")
	if !ok {
		return
	}
	tour, err := t.itineraryService.RemoveRecommendation(c.Request.Context(), workspaceID(c), c.Param("tourId"), dayIndex, recIndex)
	respondTour(c, tour, err, "Recommendation removed")
}

// DayLabels godoc
// @Summary Preview labels for a day list
// @Description Labels and stats for an unsaved day list
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body []itinerary.DayRecord true "Days"
// @Success 200 {array} string
// @Router /tours/labels [post]
func (t *TourController) DayLabels(c *gin.Context) {
	var days []itinerary.DayRecord
	if !bindJSON(c, &days) {
		return
	}
	it := itinerary.New(days)
	utils.RespondSuccess(c, gin.H{"labels": it.Labels(), "stats": it.Stats()}, "Labels computed")
}
