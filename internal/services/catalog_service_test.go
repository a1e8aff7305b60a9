package services

import (
	"context"
	"testing"
	"time"

	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/Corner-venturo/Corner-sub004/internal/models/response_models"
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockCatalogRepo() *mockCatalogRepo {
	m := &mockCatalogRepo{}
	m.On("ListRegions", mock.Anything, "jp").Return([]db_models.Region{{ID: "kansai", CountryID: "jp", Name: "關西"}}, nil).Maybe()
	m.On("ListCities", mock.Anything, "jp", "").Return([]db_models.City{{ID: "kyoto", CountryID: "jp", RegionID: "kansai", Name: "京都"}}, nil).Maybe()
	return m
}

func TestCatalogList_RequiresCountry(t *testing.T) {
	t.Parallel()
	repo := &mockCatalogRepo{}
	svc := NewCatalogService(repo, time.Minute)

	_, err := svc.List(context.Background(), KindAttraction, repositories.CatalogFilter{})
	assert.ErrorIs(t, err, utils.ErrCountryRequired)
	_, err = svc.Regions(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrCountryRequired)
	repo.AssertNotCalled(t, "ListAttractions", mock.Anything, mock.Anything)
}

func TestCatalogList_AttractionsResolvePlaceNamesAndCache(t *testing.T) {
	t.Parallel()
	repo := newMockCatalogRepo()
	f := repositories.CatalogFilter{CountryID: "jp"}
	repo.On("ListAttractions", mock.Anything, f).Return([]db_models.Attraction{{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		CatalogPlace: db_models.CatalogPlace{
			Name: "清水寺", CountryID: "jp", RegionID: "kansai", CityID: "kyoto",
			Images: pq.StringArray{"a.jpg"},
		},
		Aliases: pq.StringArray{"Kiyomizu-dera"},
	}}, nil).Once()

	svc := NewCatalogService(repo, time.Minute)
	items, err := svc.List(context.Background(), KindAttraction, f)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, response_models.SourceAttraction, items[0].Source)
	assert.Equal(t, "關西", items[0].RegionName)
	assert.Equal(t, "京都", items[0].CityName)
	assert.Equal(t, []string{"Kiyomizu-dera"}, items[0].Aliases)

	items[0].Name = "mutated"
	again, err := svc.List(context.Background(), KindAttraction, f)
	require.NoError(t, err)
	assert.Equal(t, "清水寺", again[0].Name)
	repo.AssertNumberOfCalls(t, "ListAttractions", 1)
	repo.AssertNumberOfCalls(t, "ListRegions", 1)
}

func TestCatalogList_RestaurantsPutMichelinFirst(t *testing.T) {
	t.Parallel()
	repo := newMockCatalogRepo()
	f := repositories.CatalogFilter{CountryID: "jp", CityID: "kyoto"}
	repo.On("ListRestaurants", mock.Anything, f).Return([]db_models.Restaurant{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, CatalogPlace: db_models.CatalogPlace{Name: "一蘭"}, CuisineType: pq.StringArray{"拉麵"}},
	}, nil)
	repo.On("ListMichelinRestaurants", mock.Anything, f).Return([]db_models.MichelinRestaurant{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, CatalogPlace: db_models.CatalogPlace{Name: "菊乃井"}, MichelinStars: 3},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, CatalogPlace: db_models.CatalogPlace{Name: "祇園 丸山"}, MichelinStars: 2},
	}, nil)

	svc := NewCatalogService(repo, time.Minute)
	items, err := svc.List(context.Background(), KindRestaurant, f)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"菊乃井", "祇園 丸山", "一蘭"}, []string{items[0].Name, items[1].Name, items[2].Name})
	assert.Equal(t, response_models.SourceMichelin, items[0].Source)
	assert.Equal(t, 3, items[0].MichelinStars)
	assert.Equal(t, response_models.SourceRestaurant, items[2].Source)
	assert.Equal(t, []string{"拉麵"}, items[2].CuisineType)
}

func TestCatalogList_Hotels(t *testing.T) {
	t.Parallel()
	repo := newMockCatalogRepo()
	f := repositories.CatalogFilter{CountryID: "jp", Brand: "星野"}
	stars := 5
	repo.On("ListHotels", mock.Anything, f).Return([]db_models.Hotel{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, CatalogPlace: db_models.CatalogPlace{Name: "虹夕諾雅"}, Brand: "星野", StarRating: &stars, IsFeatured: true},
	}, nil)

	items, err := NewCatalogService(repo, time.Minute).List(context.Background(), KindHotel, f)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "星野", items[0].Brand)
	assert.Equal(t, 5, *items[0].StarRating)
	assert.True(t, items[0].IsFeatured)
}

func TestCatalogList_Errors(t *testing.T) {
	t.Parallel()
	repo := newMockCatalogRepo()
	f := repositories.CatalogFilter{CountryID: "jp"}
	repo.On("ListHotels", mock.Anything, f).Return(nil, errBoom)
	svc := NewCatalogService(repo, time.Minute)

	_, err := svc.List(context.Background(), KindHotel, f)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = svc.List(context.Background(), "spa", f)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCatalogCreateAttraction_FlushesAttractionListings(t *testing.T) {
	t.Parallel()
	repo := newMockCatalogRepo()
	f := repositories.CatalogFilter{CountryID: "jp"}
	repo.On("ListAttractions", mock.Anything, f).Return([]db_models.Attraction{}, nil)
	repo.On("ListHotels", mock.Anything, f).Return([]db_models.Hotel{}, nil)
	newID := uuid.New()
	repo.On("CreateAttraction", mock.Anything, mock.AnythingOfType("*db_models.Attraction")).Return(newID, nil).Once()

	svc := NewCatalogService(repo, time.Minute)
	ctx := context.Background()
	_, err := svc.List(ctx, KindAttraction, f)
	require.NoError(t, err)
	_, err = svc.List(ctx, KindHotel, f)
	require.NoError(t, err)

	id, err := svc.CreateAttraction(ctx, &db_models.Attraction{CatalogPlace: db_models.CatalogPlace{Name: "祕境"}})
	require.NoError(t, err)
	assert.Equal(t, newID.String(), id)

	_, err = svc.List(ctx, KindAttraction, f)
	require.NoError(t, err)
	_, err = svc.List(ctx, KindHotel, f)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ListAttractions", 2)
	repo.AssertNumberOfCalls(t, "ListHotels", 1)
}

func TestCatalogDeleteAttraction(t *testing.T) {
	t.Parallel()
	repo := newMockCatalogRepo()
	f := repositories.CatalogFilter{CountryID: "jp"}
	repo.On("ListAttractions", mock.Anything, f).Return([]db_models.Attraction{}, nil)
	repo.On("DeleteAttraction", mock.Anything, "gone").Return(nil).Once()
	repo.On("DeleteAttraction", mock.Anything, "broken").Return(errBoom).Once()

	svc := NewCatalogService(repo, time.Minute)
	ctx := context.Background()
	_, err := svc.List(ctx, KindAttraction, f)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAttraction(ctx, "gone"))
	_, err = svc.List(ctx, KindAttraction, f)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "ListAttractions", 2)

	assert.ErrorIs(t, svc.DeleteAttraction(ctx, "broken"), utils.ErrDatabaseError)
}

func TestCatalogResolveCountry(t *testing.T) {
	t.Parallel()
	repo := &mockCatalogRepo{}
	repo.On("GetCountry", mock.Anything, "jp").Return(&db_models.Country{ID: "jp", Name: "日本"}, nil)
	repo.On("GetCountry", mock.Anything, "xx").Return(nil, nil)
	repo.On("FindCountryByName", mock.Anything, "泰國").Return(&db_models.Country{ID: "th", Name: "泰國"}, nil)
	repo.On("FindCountryByName", mock.Anything, "火星").Return(nil, errBoom)
	svc := NewCatalogService(repo, time.Minute)
	ctx := context.Background()

	id, err := svc.ResolveCountry(ctx, "jp", "泰國")
	require.NoError(t, err)
	assert.Equal(t, "jp", id)

	id, err = svc.ResolveCountry(ctx, "xx", "")
	require.NoError(t, err)
	assert.Equal(t, "", id)

	id, err = svc.ResolveCountry(ctx, "", "泰國")
	require.NoError(t, err)
	assert.Equal(t, "th", id)

	_, err = svc.ResolveCountry(ctx, "", "火星")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	id, err = svc.ResolveCountry(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestFilterCatalogItems(t *testing.T) {
	t.Parallel()

	items := []response_models.CatalogItem{
		{ID: "1", Name: "虹夕諾雅 京都", Brand: "Hoshino Resorts", CityName: "京都"},
		{ID: "2", Name: "Park Hyatt Tokyo", NameEn: "Park Hyatt", RegionName: "關東"},
		{ID: "3", Name: "一蘭", CuisineType: []string{"拉麵"}},
		{ID: "4", Name: "清水寺", Aliases: []string{"Kiyomizu-dera"}},
	}

	ids := func(in []response_models.CatalogItem) []string {
		out := []string{}
		for _, it := range in {
			out = append(out, it.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1"}, ids(FilterCatalogItems(items, "hoshino")))
	assert.Equal(t, []string{"2"}, ids(FilterCatalogItems(items, "關東")))
	assert.Equal(t, []string{"1"}, ids(FilterCatalogItems(items, "京都")))
	assert.Equal(t, []string{"3"}, ids(FilterCatalogItems(items, "拉麵")))
	assert.Equal(t, []string{"4"}, ids(FilterCatalogItems(items, "KIYOMIZU")))
	assert.Len(t, FilterCatalogItems(items, "  "), 4)
	assert.Empty(t, FilterCatalogItems(items, "osaka"))
}
