package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Corner-venturo/Corner-sub004/internal/itinerary"
	"github.com/Corner-venturo/Corner-sub004/internal/models/request_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/response_models"
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/pkg/memcache"
	"github.com/Corner-venturo/Corner-sub004/pkg/notify"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Selector session states.
const (
	SelectorLoading   = "loading"
	SelectorReady     = "ready"
	SelectorSelecting = "selecting"
	SelectorApplying  = "applying"
	SelectorClosed    = "closed"
)

type SelectorServiceInterface interface {
	Open(ctx context.Context, owner, workspaceID string, req request_models.OpenSelectorRequest) (*response_models.SelectorResponse, error)
	Get(ctx context.Context, owner, id string) (*response_models.SelectorResponse, error)
	SetFilters(ctx context.Context, owner, id string, req request_models.SelectorFiltersRequest) (*response_models.SelectorResponse, error)
	Toggle(ctx context.Context, owner, id, itemID string) (*response_models.SelectorResponse, error)
	AddManual(ctx context.Context, owner, id, name string) (*response_models.SelectorResult, error)
	Confirm(ctx context.Context, owner, id string) (*response_models.SelectorResult, error)
	Close(ctx context.Context, owner, id string) error
}

// selectorSession is one open dialog. Fetches run without holding mu; a
// result is kept only if generation is unchanged when it lands.
type selectorSession struct {
	mu sync.Mutex

	id          string
	owner       string
	workspaceID string
	kind        string
	tourID      string
	dayIndex    int
	meal        string

	state      string
	generation uint64
	filters    memcache.SelectorFilters
	search     string
	tokens     []string
	rows       []response_models.CatalogItem

	selected      map[string]response_models.CatalogItem
	selectedOrder []string
}

type SelectorService struct {
	sessions  *cache.Cache
	prefs     memcache.SelectorPreferences
	catalog   CatalogServiceInterface
	itinerary ItineraryServiceInterface
}

func NewSelectorService(
	catalog CatalogServiceInterface,
	itinerarySvc ItineraryServiceInterface,
	prefs memcache.SelectorPreferences,
	ttl time.Duration,
) SelectorServiceInterface {
	return &SelectorService{
		sessions:  cache.New(ttl, ttl),
		prefs:     prefs,
		catalog:   catalog,
		itinerary: itinerarySvc,
	}
}

func (s *SelectorService) Open(ctx context.Context, owner, workspaceID string, req request_models.OpenSelectorRequest) (*response_models.SelectorResponse, error) {
	switch req.Kind {
	case KindAttraction, KindHotel:
	case KindRestaurant:
		if req.Meal != MealBreakfast && req.Meal != MealLunch && req.Meal != MealDinner {
			return nil, fmt.Errorf("%w: unknown meal %q", utils.ErrInvalidInput, req.Meal)
		}
	default:
		return nil, fmt.Errorf("%w: unknown selector kind %q", utils.ErrInvalidInput, req.Kind)
	}

	tour, err := s.itinerary.GetTour(ctx, workspaceID, req.TourID)
	if err != nil {
		return nil, err
	}
	if req.DayIndex < 0 || req.DayIndex >= len(tour.Days) {
		return nil, utils.ErrDayIndexOutOfRange
	}

	sess := &selectorSession{
		id:          uuid.NewString(),
		owner:       owner,
		workspaceID: workspaceID,
		kind:        req.Kind,
		tourID:      req.TourID,
		dayIndex:    req.DayIndex,
		state:       SelectorReady,
		selected:    map[string]response_models.CatalogItem{},
	}
	if req.Kind == KindRestaurant {
		sess.meal = req.Meal
	}
	if req.Kind == KindAttraction {
		sess.tokens = itinerary.TitleTokens(tour.Days[req.DayIndex].Title)
	}
	sess.filters = s.initialFilters(ctx, owner, req.Kind, tour)

	s.sessions.Set(sess.id, sess, cache.DefaultExpiration)
	s.refresh(ctx, sess)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

// initialFilters restores the remembered filters unless the tour names a
// different country, in which case the tour country wins with no region,
// city or brand.
func (s *SelectorService) initialFilters(ctx context.Context, owner, kind string, tour *response_models.TourResponse) memcache.SelectorFilters {
	saved, _ := s.prefs.Get(ctx, owner, kind)

	countryID, err := s.catalog.ResolveCountry(ctx, tour.CountryID, tour.Country)
	if err != nil {
		log.Printf("[selector] resolve tour country %q: %v", tour.Country, err)
		return saved
	}
	if countryID != "" && countryID != saved.CountryID {
		f := memcache.SelectorFilters{CountryID: countryID}
		s.prefs.Set(ctx, owner, kind, f)
		return f
	}
	return saved
}

func (s *SelectorService) session(owner, id string) (*selectorSession, error) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, utils.ErrSelectorNotFound
	}
	sess := v.(*selectorSession)
	if sess.owner != owner {
		return nil, utils.ErrSelectorNotFound
	}
	s.sessions.Set(id, sess, cache.DefaultExpiration)
	return sess, nil
}

// refresh fetches rows for the session's current filters. Without a
// country nothing is fetched.
func (s *SelectorService) refresh(ctx context.Context, sess *selectorSession) {
	sess.mu.Lock()
	if sess.state == SelectorClosed {
		sess.mu.Unlock()
		return
	}
	sess.generation++
	gen := sess.generation
	kind := sess.kind
	f := sess.filters
	if f.CountryID == "" {
		sess.rows = nil
		sess.settle()
		sess.mu.Unlock()
		return
	}
	sess.state = SelectorLoading
	sess.mu.Unlock()

	items, err := s.catalog.List(ctx, kind, repositories.CatalogFilter{
		CountryID: f.CountryID,
		RegionID:  f.RegionID,
		CityID:    f.CityID,
		Brand:     f.Brand,
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.generation != gen || sess.state == SelectorClosed {
		log.Printf("[selector] %s: discarding stale %s rows", sess.id, kind)
		return
	}
	if err != nil {
		log.Printf("[selector] %s: load %s rows: %v", sess.id, kind, err)
		notify.FromContext(ctx).Error("載入資料失敗")
		items = nil
	}
	sess.rows = items
	sess.settle()
}

// settle leaves loading for ready or selecting. Caller holds mu.
func (sess *selectorSession) settle() {
	if sess.state == SelectorApplying || sess.state == SelectorClosed {
		return
	}
	if len(sess.selected) > 0 {
		sess.state = SelectorSelecting
	} else {
		sess.state = SelectorReady
	}
}

// editable reports whether the session accepts changes. Caller holds mu.
func (sess *selectorSession) editable() error {
	switch sess.state {
	case SelectorClosed:
		return utils.ErrSelectorClosed
	case SelectorApplying:
		return utils.ErrSelectorBusy
	}
	return nil
}

func (s *SelectorService) Get(_ context.Context, owner, id string) (*response_models.SelectorResponse, error) {
	sess, err := s.session(owner, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (s *SelectorService) SetFilters(ctx context.Context, owner, id string, req request_models.SelectorFiltersRequest) (*response_models.SelectorResponse, error) {
	sess, err := s.session(owner, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.editable(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	prev := sess.filters
	f := sess.filters
	if req.CountryID != nil && *req.CountryID != f.CountryID {
		f.CountryID = *req.CountryID
		f.RegionID = ""
		f.CityID = ""
	}
	if req.RegionID != nil && *req.RegionID != f.RegionID {
		f.RegionID = *req.RegionID
		f.CityID = ""
	}
	if req.CityID != nil {
		f.CityID = *req.CityID
	}
	if req.Brand != nil && sess.kind == KindHotel {
		f.Brand = *req.Brand
	}
	if req.Search != nil {
		sess.search = *req.Search
	}
	sess.filters = f
	kind := sess.kind
	sess.mu.Unlock()

	if f != prev {
		s.prefs.Set(ctx, owner, kind, f)
		s.refresh(ctx, sess)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), nil
}

func (s *SelectorService) Toggle(_ context.Context, owner, id, itemID string) (*response_models.SelectorResponse, error) {
	sess, err := s.session(owner, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.editable(); err != nil {
		return nil, err
	}

	if _, ok := sess.selected[itemID]; ok {
		delete(sess.selected, itemID)
		for i, sid := range sess.selectedOrder {
			if sid == itemID {
				sess.selectedOrder = append(sess.selectedOrder[:i], sess.selectedOrder[i+1:]...)
				break
			}
		}
	} else {
		item, ok := sess.row(itemID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown row %q", utils.ErrInvalidInput, itemID)
		}
		sess.selected[itemID] = item
		sess.selectedOrder = append(sess.selectedOrder, itemID)
	}
	sess.settle()
	return sess.snapshot(), nil
}

func (sess *selectorSession) row(id string) (response_models.CatalogItem, bool) {
	for _, r := range sess.rows {
		if r.ID == id {
			return r, true
		}
	}
	return response_models.CatalogItem{}, false
}

// Confirm applies the selected records to the tour and closes the session.
// A failed apply keeps the session open with its selection.
func (s *SelectorService) Confirm(ctx context.Context, owner, id string) (*response_models.SelectorResult, error) {
	sess, err := s.session(owner, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.editable(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	if len(sess.selected) == 0 {
		sess.mu.Unlock()
		return nil, utils.ErrSelectionEmpty
	}
	records := sess.selectedRecords()
	sess.state = SelectorApplying
	sess.mu.Unlock()

	return s.finish(ctx, sess, records)
}

// AddManual applies a free-text entry that is not in the catalog. The
// record gets a manual_ id so the activity can later be promoted.
func (s *SelectorService) AddManual(ctx context.Context, owner, id, name string) (*response_models.SelectorResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", utils.ErrInvalidInput)
	}
	sess, err := s.session(owner, id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.editable(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	record := response_models.CatalogItem{
		ID:        fmt.Sprintf("%s%d", itinerary.ManualIDPrefix, utils.NowUnixMillis()),
		Source:    response_models.SourceManual,
		Name:      name,
		CountryID: sess.filters.CountryID,
		CityID:    sess.filters.CityID,
	}
	sess.state = SelectorApplying
	sess.mu.Unlock()

	return s.finish(ctx, sess, []response_models.CatalogItem{record})
}

func (s *SelectorService) finish(ctx context.Context, sess *selectorSession, records []response_models.CatalogItem) (*response_models.SelectorResult, error) {
	tour, err := s.apply(ctx, sess, records)

	sess.mu.Lock()
	if err != nil {
		if sess.state == SelectorApplying {
			sess.state = SelectorSelecting
			sess.settle()
		}
		sess.mu.Unlock()
		return nil, err
	}
	sess.close()
	sess.mu.Unlock()
	s.sessions.Delete(sess.id)

	applied := len(records)
	if sess.kind != KindAttraction {
		applied = 1
	}
	return &response_models.SelectorResult{Applied: applied, Tour: tour}, nil
}

func (s *SelectorService) apply(ctx context.Context, sess *selectorSession, records []response_models.CatalogItem) (*response_models.TourResponse, error) {
	switch sess.kind {
	case KindAttraction:
		return s.itinerary.AddAttractionsToDay(ctx, sess.workspaceID, sess.tourID, sess.dayIndex, records)
	case KindHotel:
		return s.itinerary.ApplyHotel(ctx, sess.workspaceID, sess.tourID, sess.dayIndex, records)
	case KindRestaurant:
		return s.itinerary.ApplyRestaurant(ctx, sess.workspaceID, sess.tourID, sess.dayIndex, sess.meal, records)
	}
	return nil, fmt.Errorf("%w: unknown selector kind %q", utils.ErrInvalidInput, sess.kind)
}

// Close discards the session without touching the tour.
func (s *SelectorService) Close(_ context.Context, owner, id string) error {
	sess, err := s.session(owner, id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	sess.close()
	sess.mu.Unlock()
	s.sessions.Delete(id)
	return nil
}

// close clears transient state and invalidates in-flight fetches. Caller
// holds mu.
func (sess *selectorSession) close() {
	sess.state = SelectorClosed
	sess.generation++
	sess.selected = map[string]response_models.CatalogItem{}
	sess.selectedOrder = nil
}

// selectedRecords lists selected rows in row order, then selections no
// longer in the current rows in the order they were picked. Caller holds mu.
func (sess *selectorSession) selectedRecords() []response_models.CatalogItem {
	out := make([]response_models.CatalogItem, 0, len(sess.selected))
	seen := make(map[string]bool, len(sess.selected))
	for _, r := range sess.rows {
		if item, ok := sess.selected[r.ID]; ok {
			out = append(out, item)
			seen[r.ID] = true
		}
	}
	for _, id := range sess.selectedOrder {
		if !seen[id] {
			out = append(out, sess.selected[id])
		}
	}
	return out
}

// visibleRows applies the search term and flags suggestions; suggested rows
// lead when there is no search term. Caller holds mu.
func (sess *selectorSession) visibleRows() []response_models.CatalogItem {
	rows := cloneItems(FilterCatalogItems(sess.rows, sess.search))
	for i := range rows {
		rows[i].Suggested = itinerary.IsSuggested(rows[i].Name, sess.tokens) ||
			(rows[i].NameEn != "" && itinerary.IsSuggested(rows[i].NameEn, sess.tokens))
	}
	if strings.TrimSpace(sess.search) == "" {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Suggested && !rows[j].Suggested
		})
	}
	return rows
}

func (sess *selectorSession) snapshot() *response_models.SelectorResponse {
	ids := make([]string, len(sess.selectedOrder))
	copy(ids, sess.selectedOrder)
	return &response_models.SelectorResponse{
		ID:       sess.id,
		Kind:     sess.kind,
		State:    sess.state,
		TourID:   sess.tourID,
		DayIndex: sess.dayIndex,
		Meal:     sess.meal,
		Filters: response_models.SelectorFilters{
			CountryID: sess.filters.CountryID,
			RegionID:  sess.filters.RegionID,
			CityID:    sess.filters.CityID,
			Brand:     sess.filters.Brand,
		},
		Search:      sess.search,
		Rows:        sess.visibleRows(),
		SelectedIDs: ids,
	}
}
