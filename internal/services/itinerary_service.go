package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Corner-venturo/Corner-sub004/internal/itinerary"
	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/request_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/response_models"
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/pkg/notify"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	LibraryCategoryActivity = "activity"
	promotedCategory        = "景點"
)

// Meal slots a restaurant can be applied to.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

type ItineraryServiceInterface interface {
	CreateTour(ctx context.Context, workspaceID string, req request_models.CreateTourRequest) (*response_models.TourResponse, error)
	GetTour(ctx context.Context, workspaceID, tourID string) (*response_models.TourResponse, error)

	AddDay(ctx context.Context, workspaceID, tourID string, alternative bool) (*response_models.TourResponse, error)
	UpdateDay(ctx context.Context, workspaceID, tourID string, dayIndex int, patch itinerary.DayPatch) (*response_models.TourResponse, error)
	RemoveLastDay(ctx context.Context, workspaceID, tourID string) (*response_models.TourResponse, error)
	SwapDays(ctx context.Context, workspaceID, tourID string, a, b int) (*response_models.TourResponse, error)
	MoveDay(ctx context.Context, workspaceID, tourID, fromID, toID string) (*response_models.TourResponse, error)

	AddActivity(ctx context.Context, workspaceID, tourID string, dayIndex int) (*response_models.TourResponse, error)
	UpdateActivity(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int, field, value string) (*response_models.TourResponse, error)
	RemoveActivity(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int) (*response_models.TourResponse, error)
	ReorderActivities(ctx context.Context, workspaceID, tourID string, dayIndex int, req request_models.ReorderActivitiesRequest) (*response_models.TourResponse, error)
	MoveActivity(ctx context.Context, workspaceID, tourID string, dayIndex int, fromID, toID string) (*response_models.TourResponse, error)
	SetActivityImagePosition(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int, req request_models.ImagePositionRequest) (*response_models.TourResponse, error)

	AddDayImage(ctx context.Context, workspaceID, tourID string, dayIndex int, url string) (*response_models.TourResponse, error)
	UpdateDayImage(ctx context.Context, workspaceID, tourID string, dayIndex, imageIndex int, url string) (*response_models.TourResponse, error)
	SetDayImagePosition(ctx context.Context, workspaceID, tourID string, dayIndex, imageIndex int, req request_models.ImagePositionRequest) (*response_models.TourResponse, error)
	RemoveDayImage(ctx context.Context, workspaceID, tourID string, dayIndex, imageIndex int) (*response_models.TourResponse, error)
	MoveDayImage(ctx context.Context, workspaceID, tourID string, dayIndex int, fromID, toID string) (*response_models.TourResponse, error)

	AddRecommendation(ctx context.Context, workspaceID, tourID string, dayIndex int) (*response_models.TourResponse, error)
	UpdateRecommendation(ctx context.Context, workspaceID, tourID string, dayIndex, recIndex int, value string) (*response_models.TourResponse, error)
	RemoveRecommendation(ctx context.Context, workspaceID, tourID string, dayIndex, recIndex int) (*response_models.TourResponse, error)

	AddAttractionsToDay(ctx context.Context, workspaceID, tourID string, dayIndex int, items []response_models.CatalogItem) (*response_models.TourResponse, error)
	ApplyHotel(ctx context.Context, workspaceID, tourID string, dayIndex int, items []response_models.CatalogItem) (*response_models.TourResponse, error)
	ApplyRestaurant(ctx context.Context, workspaceID, tourID string, dayIndex int, meal string, items []response_models.CatalogItem) (*response_models.TourResponse, error)
	PromoteActivity(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int) (*response_models.PromoteActivityResponse, error)
}

type ItineraryService struct {
	tourRepo    repositories.TourRepository
	libraryRepo repositories.ImageLibraryRepository
	catalog     CatalogServiceInterface
}

func NewItineraryService(
	tourRepo repositories.TourRepository,
	libraryRepo repositories.ImageLibraryRepository,
	catalog CatalogServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		tourRepo:    tourRepo,
		libraryRepo: libraryRepo,
		catalog:     catalog,
	}
}

// ---------- Persistence helpers ----------

func decodeDays(raw datatypes.JSON) ([]itinerary.DayRecord, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var days []itinerary.DayRecord
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func encodeDays(days []itinerary.DayRecord) (datatypes.JSON, error) {
	b, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func buildTourResponse(t *db_models.Tour) (*response_models.TourResponse, error) {
	days, err := decodeDays(t.Days)
	if err != nil {
		log.Printf("[itinerary] decode days of tour %s: %v", t.ID, err)
		return nil, utils.ErrDatabaseError
	}
	it := itinerary.New(days)
	return &response_models.TourResponse{
		ID:             t.ID.String(),
		WorkspaceID:    t.WorkspaceID,
		Title:          t.Title,
		Country:        t.Country,
		CountryID:      t.CountryID,
		ItineraryStyle: t.ItineraryStyle,
		Days:           it.Days,
		Labels:         it.Labels(),
		Stats:          it.Stats(),
		UpdatedAt:      utils.FormatUnixSeconds(t.UpdatedAt),
	}, nil
}

func mapItineraryErr(err error) error {
	switch {
	case errors.Is(err, itinerary.ErrDayIndex):
		return utils.ErrDayIndexOutOfRange
	case errors.Is(err, itinerary.ErrActivityIndex):
		return utils.ErrActivityIndexOutOfRange
	case errors.Is(err, itinerary.ErrImageIndex):
		return utils.ErrImageIndexOutOfRange
	case errors.Is(err, itinerary.ErrRecommendationIndex):
		return utils.ErrRecommendationIndexOutOfRange
	case errors.Is(err, itinerary.ErrUnknownField):
		return utils.ErrInvalidField
	case errors.Is(err, itinerary.ErrFirstDayAlternative):
		return utils.ErrFirstDayAlternative
	case errors.Is(err, itinerary.ErrNotAdjacent):
		return utils.ErrDaysNotAdjacent
	case errors.Is(err, itinerary.ErrNotPermutation):
		return utils.ErrInvalidOrder
	case errors.Is(err, itinerary.ErrNoDays):
		return utils.ErrNoDays
	default:
		return err
	}
}

// edit is the single write path for a tour's day list: load under lock,
// apply fn to the decoded itinerary, write back, all in one transaction.
func (s *ItineraryService) edit(
	ctx context.Context,
	workspaceID, tourID string,
	fn func(it *itinerary.Itinerary) error,
) (*response_models.TourResponse, error) {
	if _, err := uuid.Parse(tourID); err != nil {
		return nil, utils.ErrTourNotFound
	}

	var domainErr error
	tour, err := s.tourRepo.Mutate(ctx, tourID, func(t *db_models.Tour) error {
		if t.WorkspaceID != workspaceID {
			domainErr = utils.ErrForbidden
			return domainErr
		}
		days, err := decodeDays(t.Days)
		if err != nil {
			return fmt.Errorf("decode days: %w", err)
		}
		it := itinerary.New(days)
		if err := fn(it); err != nil {
			domainErr = mapItineraryErr(err)
			return domainErr
		}
		raw, err := encodeDays(it.Days)
		if err != nil {
			return fmt.Errorf("encode days: %w", err)
		}
		t.Days = raw
		return nil
	})
	if domainErr != nil {
		return nil, domainErr
	}
	if err != nil {
		log.Printf("[itinerary] edit tour %s: %v", tourID, err)
		return nil, utils.ErrDatabaseError
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}
	return buildTourResponse(tour)
}

// ---------- Tours ----------

func (s *ItineraryService) CreateTour(ctx context.Context, workspaceID string, req request_models.CreateTourRequest) (*response_models.TourResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", utils.ErrInvalidInput)
	}
	it := itinerary.New(req.Days)
	if len(it.Days) > 0 && it.Days[0].IsAlternative {
		return nil, utils.ErrFirstDayAlternative
	}
	raw, err := encodeDays(it.Days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	tour := &db_models.Tour{
		WorkspaceID:    workspaceID,
		Title:          strings.TrimSpace(req.Title),
		Country:        req.Country,
		CountryID:      req.CountryID,
		ItineraryStyle: req.ItineraryStyle,
		Days:           raw,
	}
	if _, err := s.tourRepo.Create(ctx, tour); err != nil {
		log.Printf("[itinerary] create tour: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return buildTourResponse(tour)
}

func (s *ItineraryService) GetTour(ctx context.Context, workspaceID, tourID string) (*response_models.TourResponse, error) {
	if _, err := uuid.Parse(tourID); err != nil {
		return nil, utils.ErrTourNotFound
	}
	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		log.Printf("[itinerary] get tour %s: %v", tourID, err)
		return nil, utils.ErrDatabaseError
	}
	if tour == nil {
		return nil, utils.ErrTourNotFound
	}
	if tour.WorkspaceID != workspaceID {
		return nil, utils.ErrForbidden
	}
	return buildTourResponse(tour)
}

// ---------- Days ----------

func (s *ItineraryService) AddDay(ctx context.Context, workspaceID, tourID string, alternative bool) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		_, err := it.AddDay(alternative)
		return err
	})
}

func (s *ItineraryService) UpdateDay(ctx context.Context, workspaceID, tourID string, dayIndex int, patch itinerary.DayPatch) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.UpdateDay(dayIndex, patch)
	})
}

func (s *ItineraryService) RemoveLastDay(ctx context.Context, workspaceID, tourID string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.RemoveLastDay()
	})
}

func (s *ItineraryService) SwapDays(ctx context.Context, workspaceID, tourID string, a, b int) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.SwapDays(a, b)
	})
}

func (s *ItineraryService) MoveDay(ctx context.Context, workspaceID, tourID, fromID, toID string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		_, err := it.MoveDay(fromID, toID)
		return err
	})
}

// ---------- Activities ----------

func (s *ItineraryService) AddActivity(ctx context.Context, workspaceID, tourID string, dayIndex int) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.AddActivity(dayIndex)
	})
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int, field, value string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.UpdateActivity(dayIndex, actIndex, field, value)
	})
}

func (s *ItineraryService) RemoveActivity(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.RemoveActivity(dayIndex, actIndex)
	})
}

func (s *ItineraryService) ReorderActivities(ctx context.Context, workspaceID, tourID string, dayIndex int, req request_models.ReorderActivitiesRequest) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		if req.Order != nil {
			return it.ReorderActivitiesByIndex(dayIndex, req.Order)
		}
		if req.Activities != nil {
			return it.ReorderActivities(dayIndex, req.Activities)
		}
		return fmt.Errorf("%w: order or activities is required", utils.ErrInvalidInput)
	})
}

func (s *ItineraryService) MoveActivity(ctx context.Context, workspaceID, tourID string, dayIndex int, fromID, toID string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		_, err := it.MoveActivity(dayIndex, fromID, toID)
		return err
	})
}

// positionValue turns a focal point request into the stored "X% Y%" form.
func positionValue(req request_models.ImagePositionRequest) (string, error) {
	if req.Value != nil {
		return itinerary.NormalizePosition(*req.Value), nil
	}
	if req.PointerX == nil || req.PointerY == nil || req.Rect == nil {
		return "", fmt.Errorf("%w: value or pointer and rect are required", utils.ErrInvalidInput)
	}
	p := itinerary.PointerToPercent(*req.PointerX, *req.PointerY, *req.Rect)
	if req.Snap > 0 {
		p = itinerary.SnapToPreset(p, req.Snap)
	}
	return itinerary.FormatPosition(p), nil
}

func (s *ItineraryService) SetActivityImagePosition(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int, req request_models.ImagePositionRequest) (*response_models.TourResponse, error) {
	value, err := positionValue(req)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.UpdateActivity(dayIndex, actIndex, itinerary.FieldImagePosition, value)
	})
}

// ---------- Day images ----------

func (s *ItineraryService) AddDayImage(ctx context.Context, workspaceID, tourID string, dayIndex int, url string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.AddDayImage(dayIndex, url)
	})
}

func (s *ItineraryService) UpdateDayImage(ctx context.Context, workspaceID, tourID string, dayIndex, imageIndex int, url string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.UpdateDayImage(dayIndex, imageIndex, url)
	})
}

func (s *ItineraryService) SetDayImagePosition(ctx context.Context, workspaceID, tourID string, dayIndex, imageIndex int, req request_models.ImagePositionRequest) (*response_models.TourResponse, error) {
	value, err := positionValue(req)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.SetDayImagePosition(dayIndex, imageIndex, value)
	})
}

func (s *ItineraryService) RemoveDayImage(ctx context.Context, workspaceID, tourID string, dayIndex, imageIndex int) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.RemoveDayImage(dayIndex, imageIndex)
	})
}

func (s *ItineraryService) MoveDayImage(ctx context.Context, workspaceID, tourID string, dayIndex int, fromID, toID string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		_, err := it.MoveDayImage(dayIndex, fromID, toID)
		return err
	})
}

// ---------- Recommendations ----------

func (s *ItineraryService) AddRecommendation(ctx context.Context, workspaceID, tourID string, dayIndex int) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.AddRecommendation(dayIndex)
	})
}

func (s *ItineraryService) UpdateRecommendation(ctx context.Context, workspaceID, tourID string, dayIndex, recIndex int, value string) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.UpdateRecommendation(dayIndex, recIndex, value)
	})
}

func (s *ItineraryService) RemoveRecommendation(ctx context.Context, workspaceID, tourID string, dayIndex, recIndex int) (*response_models.TourResponse, error) {
	return s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.RemoveRecommendation(dayIndex, recIndex)
	})
}

// ---------- Selector results ----------

// AddAttractionsToDay appends one activity per attraction, in order. Images
// are resolved one attraction at a time before the row is locked; inside
// the edit each new index is re-read from the list after every append.
func (s *ItineraryService) AddAttractionsToDay(ctx context.Context, workspaceID, tourID string, dayIndex int, items []response_models.CatalogItem) (*response_models.TourResponse, error) {
	if len(items) == 0 {
		return nil, utils.ErrSelectionEmpty
	}
	images := make([]string, len(items))
	for i, item := range items {
		images[i] = s.resolveActivityImage(ctx, workspaceID, item)
	}

	resp, err := s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		for i, item := range items {
			day, err := it.Day(dayIndex)
			if err != nil {
				return err
			}
			idx := len(day.Activities)
			if err := it.AddActivity(dayIndex); err != nil {
				return err
			}

			fields := [][2]string{
				{itinerary.FieldAttractionID, item.ID},
				{itinerary.FieldIcon, itinerary.CatalogActivityIcon},
				{itinerary.FieldTitle, item.Name},
				{itinerary.FieldDescription, item.Description},
				{itinerary.FieldImage, images[i]},
			}
			for _, f := range fields {
				if err := it.UpdateActivity(dayIndex, idx, f[0], f[1]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	notify.FromContext(ctx).Success(fmt.Sprintf("已新增 %d 個景點", len(items)))
	return resp, nil
}

// resolveActivityImage picks the thumbnail, then the first gallery image,
// then the newest library image saved under the same name. Library lookup
// failures are logged and leave the image blank.
func (s *ItineraryService) resolveActivityImage(ctx context.Context, workspaceID string, item response_models.CatalogItem) string {
	if item.Thumbnail != "" {
		return item.Thumbnail
	}
	if len(item.Images) > 0 {
		return item.Images[0]
	}
	if workspaceID == "" || s.libraryRepo == nil {
		return ""
	}
	entry, err := s.libraryRepo.LatestByName(ctx, workspaceID, LibraryCategoryActivity, item.Name)
	if err != nil {
		log.Printf("[itinerary] image library lookup for %q: %v", item.Name, err)
		return ""
	}
	if entry == nil {
		return ""
	}
	return entry.PublicURL
}

// ApplyHotel uses the first selected hotel only.
func (s *ItineraryService) ApplyHotel(ctx context.Context, workspaceID, tourID string, dayIndex int, items []response_models.CatalogItem) (*response_models.TourResponse, error) {
	if len(items) == 0 {
		return nil, utils.ErrSelectionEmpty
	}
	hotel := items[0]
	name := hotel.Name
	rating := 5
	if hotel.StarRating != nil && *hotel.StarRating > 0 {
		rating = *hotel.StarRating
	}

	resp, err := s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		return it.UpdateDay(dayIndex, itinerary.DayPatch{
			Accommodation:       &name,
			AccommodationRating: &rating,
		})
	})
	if err != nil {
		return nil, err
	}
	notify.FromContext(ctx).Success("已選擇: " + name)
	return resp, nil
}

// RestaurantLabel is the meal text for a restaurant; michelin entries are
// prefixed with one star per michelin star.
func RestaurantLabel(r response_models.CatalogItem) string {
	if r.Source == response_models.SourceMichelin && r.MichelinStars > 0 {
		return strings.Repeat("⭐", r.MichelinStars) + " " + r.Name
	}
	return r.Name
}

// ApplyRestaurant uses the first selected restaurant only.
func (s *ItineraryService) ApplyRestaurant(ctx context.Context, workspaceID, tourID string, dayIndex int, meal string, items []response_models.CatalogItem) (*response_models.TourResponse, error) {
	if meal != MealBreakfast && meal != MealLunch && meal != MealDinner {
		return nil, fmt.Errorf("%w: unknown meal %q", utils.ErrInvalidInput, meal)
	}
	if len(items) == 0 {
		return nil, utils.ErrSelectionEmpty
	}
	text := RestaurantLabel(items[0])

	resp, err := s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		day, err := it.Day(dayIndex)
		if err != nil {
			return err
		}
		meals := day.Meals
		switch meal {
		case MealBreakfast:
			meals.Breakfast = text
		case MealLunch:
			meals.Lunch = text
		case MealDinner:
			meals.Dinner = text
		}
		return it.UpdateDay(dayIndex, itinerary.DayPatch{Meals: &meals})
	})
	if err != nil {
		return nil, err
	}
	notify.FromContext(ctx).Success("已選擇: " + text)
	return resp, nil
}

// PromoteActivity saves a manual or unlinked activity as a catalog
// attraction and links the activity to the new row. The row is created
// before the tour is locked; if the activity changed in between, the link
// is refused with ErrActivityChanged and the new row is deleted again.
func (s *ItineraryService) PromoteActivity(ctx context.Context, workspaceID, tourID string, dayIndex, actIndex int) (*response_models.PromoteActivityResponse, error) {
	current, err := s.GetTour(ctx, workspaceID, tourID)
	if err != nil {
		return nil, err
	}
	act, err := itinerary.New(current.Days).Activity(dayIndex, actIndex)
	if err != nil {
		return nil, mapItineraryErr(err)
	}
	if !itinerary.CanPromote(act) {
		return nil, utils.ErrNotPromotable
	}

	row := &db_models.Attraction{
		CatalogPlace: db_models.CatalogPlace{
			Name:        strings.TrimSpace(act.Title),
			Category:    promotedCategory,
			Description: act.Description,
			Thumbnail:   act.Image,
			CountryID:   current.CountryID,
			IsActive:    true,
		},
		WorkspaceID: workspaceID,
	}
	if act.Image != "" {
		row.Images = pq.StringArray{act.Image}
	}
	attractionID, err := s.catalog.CreateAttraction(ctx, row)
	if err != nil {
		return nil, err
	}

	resp, err := s.edit(ctx, workspaceID, tourID, func(it *itinerary.Itinerary) error {
		now, err := it.Activity(dayIndex, actIndex)
		if err != nil {
			return err
		}
		if now.Title != act.Title || now.AttractionID != act.AttractionID {
			log.Printf("[itinerary] activity %d/%d of tour %s changed during promotion", dayIndex, actIndex, tourID)
			return utils.ErrActivityChanged
		}
		return it.UpdateActivity(dayIndex, actIndex, itinerary.FieldAttractionID, attractionID)
	})
	if err != nil {
		if delErr := s.catalog.DeleteAttraction(ctx, attractionID); delErr != nil {
			log.Printf("[itinerary] orphaned attraction %s from tour %s: %v", attractionID, tourID, delErr)
		}
		return nil, err
	}
	notify.FromContext(ctx).Success("已儲存到景點資料庫")
	return &response_models.PromoteActivityResponse{AttractionID: attractionID, Tour: resp}, nil
}
