package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamconnect/internal/models/request_models"
	"roamconnect/internal/services"
	"roamconnect/pkg/utils"
)

type EmergencyController struct {
	emergencyService services.EmergencyServiceInterface
}

func NewEmergencyController(emergencyService services.EmergencyServiceInterface) *EmergencyController {
	return &EmergencyController{
		emergencyService: emergencyService,
	}
}

// CreateContact godoc
// @Summary Register an emergency contact
// @Tags Emergency
// @Accept json
// @Produce json
// @Param request body request_models.CreateEmergencyContactRequest true "Contact payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /er-cont [post]
func (e *EmergencyController) CreateContact(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.CreateEmergencyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	contact, err := e.emergencyService.CreateContact(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, contact, "Emergency contact created successfully")
}

// GetContact godoc
// @Summary Get an emergency contact
// @Tags Emergency
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /er-cont/{id} [get]
func (e *EmergencyController) GetContact(c *gin.Context) {
	contact, err := e.emergencyService.GetContactById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contact, "Emergency contact retrieved successfully")
}

// ListContacts godoc
// @Summary List emergency contacts
// @Tags Emergency
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /er-cont [get]
func (e *EmergencyController) ListContacts(c *gin.Context) {
	contacts, err := e.emergencyService.ListContacts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contacts, "Emergency contacts retrieved successfully")
}

// UpdateContact godoc
// @Summary Update an emergency contact
// @Description Only the creator may update a contact
// @Tags Emergency
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body request_models.UpdateEmergencyContactRequest true "Contact update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /er-cont/{id} [put]
func (e *EmergencyController) UpdateContact(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.UpdateEmergencyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	contact, err := e.emergencyService.UpdateContact(c.Request.Context(), c.Param("id"), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contact, "Emergency contact updated successfully")
}

// DeleteContact godoc
// @Summary Delete an emergency contact
// @Description Only the creator may delete a contact
// @Tags Emergency
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /er-cont/{id} [delete]
func (e *EmergencyController) DeleteContact(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	if err := e.emergencyService.DeleteContact(c.Request.Context(), c.Param("id"), userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Emergency contact deleted successfully")
}
