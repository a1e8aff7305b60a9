package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Corner-venturo/Corner-sub004/internal/itinerary"
	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/response_models"
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

const testWorkspace = "ws-1"

var errBoom = errors.New("boom")

// fakeTourRepo keeps tours in memory and serializes Mutate like the row
// lock does.
type fakeTourRepo struct {
	mu        sync.Mutex
	tours     map[uuid.UUID]db_models.Tour
	mutateErr error
	// beforeMutate runs before the lock is taken and may block.
	beforeMutate func()
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{tours: map[uuid.UUID]db_models.Tour{}}
}

func (r *fakeTourRepo) Create(_ context.Context, tour *db_models.Tour) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tour.ID == uuid.Nil {
		tour.ID = uuid.New()
	}
	tour.CreatedAt = time.Now().Unix()
	tour.UpdatedAt = tour.CreatedAt
	r.tours[tour.ID] = *tour
	return tour.ID, nil
}

func (r *fakeTourRepo) GetByID(_ context.Context, id string) (*db_models.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tours[uuid.MustParse(id)]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTourRepo) ListByWorkspace(_ context.Context, workspaceID string, _, _ int) ([]db_models.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.Tour
	for _, t := range r.tours {
		if t.WorkspaceID == workspaceID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) Mutate(_ context.Context, id string, fn func(tour *db_models.Tour) error) (*db_models.Tour, error) {
	if r.beforeMutate != nil {
		r.beforeMutate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mutateErr != nil {
		return nil, r.mutateErr
	}
	t, ok := r.tours[uuid.MustParse(id)]
	if !ok {
		return nil, nil
	}
	t.Days = append(datatypes.JSON(nil), t.Days...)
	if err := fn(&t); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now().Unix()
	r.tours[t.ID] = t
	return &t, nil
}

// seed stores a tour with the given days and returns its id.
func (r *fakeTourRepo) seed(t *testing.T, tour db_models.Tour, days []itinerary.DayRecord) string {
	t.Helper()
	raw, err := json.Marshal(itinerary.New(days).Days)
	require.NoError(t, err)
	tour.Days = raw
	if tour.WorkspaceID == "" {
		tour.WorkspaceID = testWorkspace
	}
	id, err := r.Create(context.Background(), &tour)
	require.NoError(t, err)
	return id.String()
}

// overwriteDays replaces a stored day list, bypassing Mutate.
func (r *fakeTourRepo) overwriteDays(t *testing.T, id string, days []itinerary.DayRecord) {
	t.Helper()
	raw, err := json.Marshal(itinerary.New(days).Days)
	require.NoError(t, err)
	r.mu.Lock()
	defer r.mu.Unlock()
	tour := r.tours[uuid.MustParse(id)]
	tour.Days = raw
	r.tours[tour.ID] = tour
}

func (r *fakeTourRepo) rawDays(t *testing.T, id string) []byte {
	t.Helper()
	tour, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, tour)
	return append([]byte(nil), tour.Days...)
}

func (r *fakeTourRepo) days(t *testing.T, id string) []itinerary.DayRecord {
	t.Helper()
	tour, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, tour)
	var days []itinerary.DayRecord
	require.NoError(t, json.Unmarshal(tour.Days, &days))
	return days
}

type fakeLibraryRepo struct {
	mu        sync.Mutex
	entries   []db_models.ImageLibraryEntry
	lookupErr error
	lookups   []string
}

func (r *fakeLibraryRepo) Create(_ context.Context, entry *db_models.ImageLibraryEntry) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	r.entries = append(r.entries, *entry)
	return entry.ID, nil
}

func (r *fakeLibraryRepo) LatestByName(_ context.Context, workspaceID, category, name string) (*db_models.ImageLibraryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, name)
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	var best *db_models.ImageLibraryEntry
	for i := range r.entries {
		e := &r.entries[i]
		if e.WorkspaceID != workspaceID || e.Category != category || e.Name != name {
			continue
		}
		if best == nil || e.CreatedAt >= best.CreatedAt {
			best = e
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

// mockCatalogRepo is a testify mock of repositories.CatalogRepository.
type mockCatalogRepo struct {
	mock.Mock
}

var _ repositories.CatalogRepository = (*mockCatalogRepo)(nil)

func (m *mockCatalogRepo) ListCountries(ctx context.Context) ([]db_models.Country, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]db_models.Country)
	return rows, args.Error(1)
}

func (m *mockCatalogRepo) GetCountry(ctx context.Context, id string) (*db_models.Country, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*db_models.Country)
	return c, args.Error(1)
}

func (m *mockCatalogRepo) FindCountryByName(ctx context.Context, name string) (*db_models.Country, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*db_models.Country)
	return c, args.Error(1)
}

func (m *mockCatalogRepo) ListRegions(ctx context.Context, countryID string) ([]db_models.Region, error) {
	args := m.Called(ctx, countryID)
	rows, _ := args.Get(0).([]db_models.Region)
	return rows, args.Error(1)
}

func (m *mockCatalogRepo) ListCities(ctx context.Context, countryID, regionID string) ([]db_models.City, error) {
	args := m.Called(ctx, countryID, regionID)
	rows, _ := args.Get(0).([]db_models.City)
	return rows, args.Error(1)
}

func (m *mockCatalogRepo) ListAttractions(ctx context.Context, f repositories.CatalogFilter) ([]db_models.Attraction, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]db_models.Attraction)
	return rows, args.Error(1)
}

func (m *mockCatalogRepo) ListHotels(ctx context.Context, f repositories.CatalogFilter) ([]db_models.Hotel, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]db_models.Hotel)
	return rows, args.Error(1)
}

func (m *mockCatalogRepo) ListRestaurants(ctx context.Context, f repositories.CatalogFilter) ([]db_models.Restaurant, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]db_models.Restaurant)
	return rows, args.Error(1)
}

func (m *mockCatalogRepo) ListMichelinRestaurants(ctx context.Context, f repositories.CatalogFilter) ([]db_models.MichelinRestaurant, error) {
	args := m.Called(ctx, f)
	rows, _ := args.Get(0).([]db_models.MichelinRestaurant)
	return rows, args.Error(1)
}

func (m *mockCatalogRepo) CreateAttraction(ctx context.Context, a *db_models.Attraction) (uuid.UUID, error) {
	args := m.Called(ctx, a)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockCatalogRepo) DeleteAttraction(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// fakeCatalog is a CatalogServiceInterface backed by fixed rows. listHook,
// when set, runs before List returns and may block.
type fakeCatalog struct {
	mu        sync.Mutex
	rows      map[string][]response_models.CatalogItem
	countries map[string]string // id -> name
	listErr   error
	listHook  func(kind string, f repositories.CatalogFilter)
	listCalls []repositories.CatalogFilter
	created   []*db_models.Attraction
	createErr error
	deleted   []string
}

var _ CatalogServiceInterface = (*fakeCatalog)(nil)

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		rows:      map[string][]response_models.CatalogItem{},
		countries: map[string]string{"jp": "日本", "th": "泰國"},
	}
}

func (c *fakeCatalog) Countries(context.Context) ([]response_models.CatalogCountry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]response_models.CatalogCountry, 0, len(c.countries))
	for id, name := range c.countries {
		out = append(out, response_models.CatalogCountry{ID: id, Name: name})
	}
	return out, nil
}

func (c *fakeCatalog) Regions(context.Context, string) ([]response_models.CatalogRegion, error) {
	return []response_models.CatalogRegion{}, nil
}

func (c *fakeCatalog) Cities(context.Context, string, string) ([]response_models.CatalogCity, error) {
	return []response_models.CatalogCity{}, nil
}

func (c *fakeCatalog) ResolveCountry(_ context.Context, countryID, countryName string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.countries[countryID]; ok {
		return countryID, nil
	}
	for id, name := range c.countries {
		if countryName != "" && name == countryName {
			return id, nil
		}
	}
	return "", nil
}

func (c *fakeCatalog) List(_ context.Context, kind string, f repositories.CatalogFilter) ([]response_models.CatalogItem, error) {
	c.mu.Lock()
	c.listCalls = append(c.listCalls, f)
	hook, err := c.listHook, c.listErr
	var out []response_models.CatalogItem
	for _, it := range c.rows[kind] {
		if it.CountryID == f.CountryID && (f.RegionID == "" || it.RegionID == f.RegionID) {
			out = append(out, it)
		}
	}
	c.mu.Unlock()

	if hook != nil {
		hook(kind, f)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fakeCatalog) CreateAttraction(_ context.Context, a *db_models.Attraction) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.createErr != nil {
		return "", c.createErr
	}
	c.created = append(c.created, a)
	return uuid.NewString(), nil
}

func (c *fakeCatalog) DeleteAttraction(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, id)
	return nil
}

func (c *fakeCatalog) listCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listCalls)
}
