package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every editor route behind auth. uploadLimit guards
// the image upload endpoint only.
func RegisterRoutes(r *gin.Engine,
	auth gin.HandlerFunc,
	uploadLimit gin.HandlerFunc,
	tourController *TourController,
	catalogController *CatalogController,
	selectorController *SelectorController,
	libraryController *LibraryController) {

	api := r.Group("/", auth)

	tours := api.Group("/tours")
	tours.POST("", tourController.CreateTour)
	tours.POST("/labels", tourController.DayLabels)
	tours.GET("/:tourId", tourController.GetTour)

	days := tours.Group("/:tourId/days")
	days.POST("", tourController.AddDay)
	days.PATCH("/:dayIndex", tourController.UpdateDay)
	days.DELETE("/last", tourController.RemoveLastDay)
	days.POST("/swap", tourController.SwapDays)
	days.POST("/move", tourController.MoveDay)

	activities := days.Group("/:dayIndex/activities")
	activities.POST("", tourController.AddActivity)
	activities.PATCH("/:actIndex", tourController.UpdateActivity)
	activities.DELETE("/:actIndex", tourController.RemoveActivity)
	activities.PUT("/order", tourController.ReorderActivities)
	activities.POST("/move", tourController.MoveActivity)
	activities.POST("/:actIndex/promote", tourController.PromoteActivity)
	activities.PUT("/:actIndex/image-position", tourController.SetActivityImagePosition)
	activities.POST("/:actIndex/image", uploadLimit, libraryController.UploadActivityImage)

	images := days.Group("/:dayIndex/images")
	images.POST("", tourController.AddDayImage)
	images.PATCH("/:imageIndex", tourController.UpdateDayImage)
	images.DELETE("/:imageIndex", tourController.RemoveDayImage)
	images.POST("/move", tourController.MoveDayImage)
	images.PUT("/:imageIndex/position", tourController.SetDayImagePosition)

	recs := days.Group("/:dayIndex/recommendations")
	recs.POST("", tourController.AddRecommendation)
	recs.PATCH("/:recIndex", tourController.UpdateRecommendation)
	recs.DELETE("/:recIndex", tourController.RemoveRecommendation)

	catalog := api.Group("/catalog")
	catalog.GET("/countries", catalogController.ListCountries)
	catalog.GET("/countries/:countryId/regions", catalogController.ListRegions)
	catalog.GET("/countries/:countryId/cities", catalogController.ListCities)
	catalog.GET("/attractions", catalogController.ListAttractions)
	catalog.GET("/hotels", catalogController.ListHotels)
	catalog.GET("/restaurants", catalogController.ListRestaurants)

	selectors := api.Group("/selectors")
	selectors.POST("", selectorController.OpenSelector)
	selectors.GET("/:id", selectorController.GetSelector)
	selectors.PATCH("/:id/filters", selectorController.SetFilters)
	selectors.POST("/:id/toggle", selectorController.Toggle)
	selectors.POST("/:id/manual", selectorController.AddManual)
	selectors.POST("/:id/confirm", selectorController.Confirm)
	selectors.DELETE("/:id", selectorController.CloseSelector)

	library := api.Group("/library")
	library.POST("", libraryController.SaveToLibrary)
	library.GET("/latest", libraryController.LatestByName)
}
