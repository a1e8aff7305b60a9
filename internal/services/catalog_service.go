package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/response_models"
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/patrickmn/go-cache"
)

// Catalog kinds a selector can browse.
const (
	KindAttraction = "attraction"
	KindHotel      = "hotel"
	KindRestaurant = "restaurant"
)

type CatalogServiceInterface interface {
	Countries(ctx context.Context) ([]response_models.CatalogCountry, error)
	Regions(ctx context.Context, countryID string) ([]response_models.CatalogRegion, error)
	Cities(ctx context.Context, countryID, regionID string) ([]response_models.CatalogCity, error)
	// ResolveCountry maps a tour's country id or display name to an active
	// catalog country id; "" when neither matches.
	ResolveCountry(ctx context.Context, countryID, countryName string) (string, error)

	// List returns the rows of one catalog kind. A country is required.
	List(ctx context.Context, kind string, f repositories.CatalogFilter) ([]response_models.CatalogItem, error)

	CreateAttraction(ctx context.Context, a *db_models.Attraction) (string, error)
	DeleteAttraction(ctx context.Context, id string) error
}

type CatalogService struct {
	repo  repositories.CatalogRepository
	cache *cache.Cache
}

func NewCatalogService(repo repositories.CatalogRepository, ttl time.Duration) CatalogServiceInterface {
	return &CatalogService{
		repo:  repo,
		cache: cache.New(ttl, ttl*2),
	}
}

func (s *CatalogService) Countries(ctx context.Context) ([]response_models.CatalogCountry, error) {
	if v, ok := s.cache.Get("countries"); ok {
		return v.([]response_models.CatalogCountry), nil
	}
	rows, err := s.repo.ListCountries(ctx)
	if err != nil {
		log.Printf("[catalog] list countries: %v", err)
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CatalogCountry, 0, len(rows))
	for _, c := range rows {
		out = append(out, response_models.CatalogCountry{ID: c.ID, Name: c.Name})
	}
	s.cache.Set("countries", out, cache.DefaultExpiration)
	return out, nil
}

func (s *CatalogService) Regions(ctx context.Context, countryID string) ([]response_models.CatalogRegion, error) {
	if countryID == "" {
		return nil, utils.ErrCountryRequired
	}
	key := "regions|" + countryID
	if v, ok := s.cache.Get(key); ok {
		return v.([]response_models.CatalogRegion), nil
	}
	rows, err := s.repo.ListRegions(ctx, countryID)
	if err != nil {
		log.Printf("[catalog] list regions of %s: %v", countryID, err)
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CatalogRegion, 0, len(rows))
	for _, r := range rows {
		out = append(out, response_models.CatalogRegion{ID: r.ID, Name: r.Name})
	}
	s.cache.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

func (s *CatalogService) Cities(ctx context.Context, countryID, regionID string) ([]response_models.CatalogCity, error) {
	if countryID == "" {
		return nil, utils.ErrCountryRequired
	}
	key := "cities|" + countryID + "|" + regionID
	if v, ok := s.cache.Get(key); ok {
		return v.([]response_models.CatalogCity), nil
	}
	rows, err := s.repo.ListCities(ctx, countryID, regionID)
	if err != nil {
		log.Printf("[catalog] list cities of %s/%s: %v", countryID, regionID, err)
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CatalogCity, 0, len(rows))
	for _, c := range rows {
		out = append(out, response_models.CatalogCity{ID: c.ID, RegionID: c.RegionID, Name: c.Name})
	}
	s.cache.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

func (s *CatalogService) ResolveCountry(ctx context.Context, countryID, countryName string) (string, error) {
	var (
		c   *db_models.Country
		err error
	)
	switch {
	case countryID != "":
		c, err = s.repo.GetCountry(ctx, countryID)
	case countryName != "":
		c, err = s.repo.FindCountryByName(ctx, countryName)
	default:
		return "", nil
	}
	if err != nil {
		log.Printf("[catalog] resolve country %q/%q: %v", countryID, countryName, err)
		return "", utils.ErrDatabaseError
	}
	if c == nil {
		return "", nil
	}
	return c.ID, nil
}

func listKey(kind string, f repositories.CatalogFilter) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", kind, f.CountryID, f.RegionID, f.CityID, f.Brand)
}

func (s *CatalogService) List(ctx context.Context, kind string, f repositories.CatalogFilter) ([]response_models.CatalogItem, error) {
	if f.CountryID == "" {
		return nil, utils.ErrCountryRequired
	}
	key := listKey(kind, f)
	if v, ok := s.cache.Get(key); ok {
		return cloneItems(v.([]response_models.CatalogItem)), nil
	}

	names, err := s.placeNames(ctx, f.CountryID)
	if err != nil {
		return nil, err
	}

	var items []response_models.CatalogItem
	switch kind {
	case KindAttraction:
		rows, err := s.repo.ListAttractions(ctx, f)
		if err != nil {
			log.Printf("[catalog] list attractions %+v: %v", f, err)
			return nil, utils.ErrDatabaseError
		}
		items = make([]response_models.CatalogItem, 0, len(rows))
		for i := range rows {
			items = append(items, attractionItem(&rows[i], names))
		}
	case KindHotel:
		rows, err := s.repo.ListHotels(ctx, f)
		if err != nil {
			log.Printf("[catalog] list hotels %+v: %v", f, err)
			return nil, utils.ErrDatabaseError
		}
		items = make([]response_models.CatalogItem, 0, len(rows))
		for i := range rows {
			items = append(items, hotelItem(&rows[i], names))
		}
	case KindRestaurant:
		michelin, err := s.repo.ListMichelinRestaurants(ctx, f)
		if err != nil {
			log.Printf("[catalog] list michelin restaurants %+v: %v", f, err)
			return nil, utils.ErrDatabaseError
		}
		rows, err := s.repo.ListRestaurants(ctx, f)
		if err != nil {
			log.Printf("[catalog] list restaurants %+v: %v", f, err)
			return nil, utils.ErrDatabaseError
		}
		items = make([]response_models.CatalogItem, 0, len(michelin)+len(rows))
		for i := range michelin {
			items = append(items, michelinItem(&michelin[i], names))
		}
		for i := range rows {
			items = append(items, restaurantItem(&rows[i], names))
		}
	default:
		return nil, fmt.Errorf("%w: unknown catalog kind %q", utils.ErrInvalidInput, kind)
	}

	s.cache.Set(key, items, cache.DefaultExpiration)
	return cloneItems(items), nil
}

// cloneItems keeps callers from writing into cached slices.
func cloneItems(items []response_models.CatalogItem) []response_models.CatalogItem {
	out := make([]response_models.CatalogItem, len(items))
	copy(out, items)
	return out
}

func (s *CatalogService) CreateAttraction(ctx context.Context, a *db_models.Attraction) (string, error) {
	id, err := s.repo.CreateAttraction(ctx, a)
	if err != nil {
		log.Printf("[catalog] create attraction %q: %v", a.Name, err)
		return "", utils.ErrDatabaseError
	}
	s.flushKind(KindAttraction)
	return id.String(), nil
}

func (s *CatalogService) DeleteAttraction(ctx context.Context, id string) error {
	if err := s.repo.DeleteAttraction(ctx, id); err != nil {
		log.Printf("[catalog] delete attraction %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	s.flushKind(KindAttraction)
	return nil
}

func (s *CatalogService) flushKind(kind string) {
	prefix := kind + "|"
	for key := range s.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			s.cache.Delete(key)
		}
	}
}

// placeNames maps region and city ids of a country to display names.
func (s *CatalogService) placeNames(ctx context.Context, countryID string) (map[string]string, error) {
	regions, err := s.Regions(ctx, countryID)
	if err != nil {
		return nil, err
	}
	cities, err := s.Cities(ctx, countryID, "")
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(regions)+len(cities))
	for _, r := range regions {
		names["r:"+r.ID] = r.Name
	}
	for _, c := range cities {
		names["c:"+c.ID] = c.Name
	}
	return names, nil
}

func placeItem(id, source string, p *db_models.CatalogPlace, names map[string]string) response_models.CatalogItem {
	return response_models.CatalogItem{
		ID:          id,
		Source:      source,
		Name:        p.Name,
		NameEn:      p.NameEn,
		Category:    p.Category,
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Images:      []string(p.Images),
		CountryID:   p.CountryID,
		RegionID:    p.RegionID,
		CityID:      p.CityID,
		RegionName:  names["r:"+p.RegionID],
		CityName:    names["c:"+p.CityID],
	}
}

func attractionItem(a *db_models.Attraction, names map[string]string) response_models.CatalogItem {
	item := placeItem(a.ID.String(), response_models.SourceAttraction, &a.CatalogPlace, names)
	item.Aliases = []string(a.Aliases)
	return item
}

func hotelItem(h *db_models.Hotel, names map[string]string) response_models.CatalogItem {
	item := placeItem(h.ID.String(), response_models.SourceHotel, &h.CatalogPlace, names)
	item.Brand = h.Brand
	item.StarRating = h.StarRating
	item.PriceRange = h.PriceRange
	item.IsFeatured = h.IsFeatured
	return item
}

func restaurantItem(r *db_models.Restaurant, names map[string]string) response_models.CatalogItem {
	item := placeItem(r.ID.String(), response_models.SourceRestaurant, &r.CatalogPlace, names)
	item.CuisineType = []string(r.CuisineType)
	item.PriceRange = r.PriceRange
	item.IsFeatured = r.IsFeatured
	return item
}

func michelinItem(r *db_models.MichelinRestaurant, names map[string]string) response_models.CatalogItem {
	item := placeItem(r.ID.String(), response_models.SourceMichelin, &r.CatalogPlace, names)
	item.CuisineType = []string(r.CuisineType)
	item.PriceRange = r.PriceRange
	item.MichelinStars = r.MichelinStars
	return item
}

// FilterCatalogItems keeps the items whose name, english name, aliases,
// category, brand, region, city or cuisine contain term, ignoring case.
func FilterCatalogItems(items []response_models.CatalogItem, term string) []response_models.CatalogItem {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return items
	}
	out := make([]response_models.CatalogItem, 0, len(items))
	for _, it := range items {
		if matchesTerm(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matchesTerm(it response_models.CatalogItem, q string) bool {
	fields := []string{it.Name, it.NameEn, it.Category, it.Brand, it.RegionName, it.CityName}
	fields = append(fields, it.Aliases...)
	fields = append(fields, it.CuisineType...)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
