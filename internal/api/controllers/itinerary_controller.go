package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamconnect/internal/models/request_models"
	"roamconnect/internal/services"
	"roamconnect/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateItinerary godoc
// @Summary Generate a new itinerary
// @Description Generates a travel plan for the given trip parameters and stores it
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Trip parameters"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itinerary [post]
func (i *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	data, err := i.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, data, "Itinerary created successfully")
}

// GetItinerary godoc
// @Summary Get a stored itinerary
// @Description Returns the stored itinerary with its plan nested under "itinerary"
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	id := c.Param("id")

	record, err := i.itineraryService.GetItineraryById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Itinerary retrieved successfully")
}

// ListItineraries godoc
// @Summary List stored itineraries
// @Tags Itineraries
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /itinerary [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	summaries, err := i.itineraryService.ListItineraries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Itineraries retrieved successfully")
}

// DeleteItinerary godoc
// @Summary Delete a stored itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	id := c.Param("id")

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// GetItineraryView godoc
// @Summary Get the rendered section view of an itinerary
// @Description Returns the ordered section tree. Day 1 is expanded by default;
// @Description pass ?day=N to expand a specific day, or ?toggle=N to flip a day's
// @Description expansion relative to the current selection.
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Param day query int false "Day to expand"
// @Param toggle query int false "Day to toggle"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/view [get]
func (i *ItineraryController) GetItineraryView(c *gin.Context) {
	id := c.Param("id")

	sel := services.NewDaySelection()
	if dayParam := c.Query("day"); dayParam != "" {
		day, err := strconv.Atoi(dayParam)
		if err != nil || day < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid day parameter")
			return
		}
		sel = services.DaySelectionAt(day)
	}
	if toggleParam := c.Query("toggle"); toggleParam != "" {
		day, err := strconv.Atoi(toggleParam)
		if err != nil || day < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid toggle parameter")
			return
		}
		sel.Toggle(day)
	}

	view, err := i.itineraryService.GetItineraryView(c.Request.Context(), id, sel)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Itinerary view built successfully")
}

// GetSimilarItineraries godoc
// @Summary Find itineraries similar to a stored one
// @Description Vector similarity over source, destination and preferences
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itinerary/{id}/similar [get]
func (i *ItineraryController) GetSimilarItineraries(c *gin.Context) {
	id := c.Param("id")

	similar, err := i.itineraryService.GetSimilarItineraries(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, similar, "Similar itineraries retrieved successfully")
}
