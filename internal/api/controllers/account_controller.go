package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamconnect/internal/models/request_models"
	"roamconnect/internal/services"
	"roamconnect/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new tourist account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tourists/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a tourist and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /tourists/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// GetTourist godoc
// @Summary Get a tourist profile
// @Tags Accounts
// @Produce json
// @Param id path string true "Tourist ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tourists/{id} [get]
func (a *AccountController) GetTourist(c *gin.Context) {
	id := c.Param("id")

	tourist, err := a.accountService.GetTouristById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tourist, "Tourist retrieved successfully")
}

// ListTourists godoc
// @Summary List tourist profiles
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /tourists [get]
func (a *AccountController) ListTourists(c *gin.Context) {
	tourists, err := a.accountService.ListTourists(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tourists, "Tourists retrieved successfully")
}

// UpdateTourist godoc
// @Summary Update the authenticated tourist's profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.UpdateTouristRequest true "Profile update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tourists/me [put]
func (a *AccountController) UpdateTourist(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.UpdateTouristRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tourist, err := a.accountService.UpdateTourist(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tourist, "Tourist updated successfully")
}

// DeleteTourist godoc
// @Summary Delete the authenticated tourist's account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /tourists/me [delete]
func (a *AccountController) DeleteTourist(c *gin.Context) {
	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	if err := a.accountService.DeleteTourist(c.Request.Context(), userId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tourist deleted successfully")
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a password reset link to the provided email if it exists
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Forgot password payload"
// @Success 200 {object} utils.APIResponse
// @Router /tourists/forgot-password [post]
func (a *AccountController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.RequestPasswordReset(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Reset a password with a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordRequest true "Reset password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /tourists/reset-password [post]
func (a *AccountController) ResetPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ResetPasswordWithToken(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password reset successfully")
}
