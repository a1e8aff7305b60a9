package controllers

import (
	"net/http"

	"github.com/Corner-venturo/Corner-sub004/internal/models/request_models"
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/gin-gonic/gin"
)

type SelectorController struct {
	selectorService services.SelectorServiceInterface
}

func NewSelectorController(selectorService services.SelectorServiceInterface) *SelectorController {
	return &SelectorController{
		selectorService: selectorService,
	}
}

// OpenSelector godoc
// @Summary Open a catalog selector for a tour day
// @Description Restores remembered filters unless the tour names another country
// @Tags Selector
// @Accept json
// @Produce json
// @Param request body request_models.OpenSelectorRequest true "Selector target"
// @Success 201 {object} response_models.SelectorResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /selectors [post]
func (s *SelectorController) OpenSelector(c *gin.Context) {
	var req request_models.OpenSelectorRequest
	if !bindJSON(c, &req) {
		return
	}
	sel, err := s.selectorService.Open(c.Request.Context(), userID(c), workspaceID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, sel, "Selector opened")
}

func (s *SelectorController) GetSelector(c *gin.Context) {
	sel, err := s.selectorService.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "Selector fetched")
}

func (s *SelectorController) SetFilters(c *gin.Context) {
	var req request_models.SelectorFiltersRequest
	if !bindJSON(c, &req) {
		return
	}
	sel, err := s.selectorService.SetFilters(c.Request.Context(), userID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "Filters updated")
}

func (s *SelectorController) Toggle(c *gin.Context) {
	var req request_models.ToggleSelectionRequest
	if !bindJSON(c, &req) {
		return
	}
	sel, err := s.selectorService.Toggle(c.Request.Context(), userID(c), c.Param("id"), req.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "Selection updated")
}

func (s *SelectorController) AddManual(c *gin.Context) {
	var req request_models.ManualEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.selectorService.AddManual(c.Request.Context(), userID(c), c.Param("id"), req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Manual entry added")
}

// Confirm godoc
// @Summary Apply the selection to the tour day
// @Tags Selector
// @Produce json
// @Param id path string true "Selector ID"
// @Success 200 {object} response_models.SelectorResult
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /selectors/{id}/confirm [post]
func (s *SelectorController) Confirm(c *gin.Context) {
	result, err := s.selectorService.Confirm(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Selection applied")
}

func (s *SelectorController) CloseSelector(c *gin.Context) {
	if err := s.selectorService.Close(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Selector closed")
}
