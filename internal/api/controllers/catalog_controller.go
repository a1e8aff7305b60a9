package controllers

import (
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) ListCountries(c *gin.Context) {
	countries, err := cc.catalogService.Countries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

func (cc *CatalogController) ListRegions(c *gin.Context) {
	regions, err := cc.catalogService.Regions(c.Request.Context(), c.Param("countryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, regions, "Regions fetched successfully")
}

func (cc *CatalogController) ListCities(c *gin.Context) {
	cities, err := cc.catalogService.Cities(c.Request.Context(), c.Param("countryId"), c.Query("region_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// ListAttractions godoc
// @Summary List catalog attractions
// @Description A country is required; region, city and search narrow the list
// @Tags Catalog
// @Produce json
// @Param country_id query string true "Country ID"
// @Param region_id query string false "Region ID"
// @Param city_id query string false "City ID"
// @Param search query string false "Free-text filter"
// @Success 200 {array} response_models.CatalogItem
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /catalog/attractions [get]
func (cc *CatalogController) ListAttractions(c *gin.Context) {
	cc.list(c, services.KindAttraction)
}

func (cc *CatalogController) ListHotels(c *gin.Context) {
	cc.list(c, services.KindHotel)
}

func (cc *CatalogController) ListRestaurants(c *gin.Context) {
	cc.list(c, services.KindRestaurant)
}

func (cc *CatalogController) list(c *gin.Context, kind string) {
	f := repositories.CatalogFilter{
		CountryID: c.Query("country_id"),
		RegionID:  c.Query("region_id"),
		CityID:    c.Query("city_id"),
	}
	if kind == services.KindHotel {
		f.Brand = c.Query("brand")
	}

	items, err := cc.catalogService.List(c.Request.Context(), kind, f)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, services.FilterCatalogItems(items, c.Query("search")), "Catalog fetched successfully")
}
