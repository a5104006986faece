package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
	"roamconnect/internal/models/request_models"
	"roamconnect/internal/models/response_models"
	"roamconnect/internal/repositories"
	mem "roamconnect/pkg/memcache"
	"roamconnect/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetTouristById(ctx context.Context, id string) (*response_models.TouristResponse, error)
	ListTourists(ctx context.Context) ([]response_models.TouristResponse, error)
	UpdateTourist(ctx context.Context, id string, request request_models.UpdateTouristRequest) (*response_models.TouristResponse, error)
	DeleteTourist(ctx context.Context, id string) error
	RequestPasswordReset(ctx context.Context, request request_models.RequestForgotPassword) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	touristRepo repositories.TouristRepository
	resetTokens mem.ResetTokenStore
	mailService MailServiceInterface
}

func NewAccountService(
	touristRepo repositories.TouristRepository,
	resetTokens mem.ResetTokenStore,
	mailService MailServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		touristRepo: touristRepo,
		resetTokens: resetTokens,
		mailService: mailService,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	startTime := time.Now()

	tourist, err := a.touristRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if tourist == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(tourist.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	log.Printf("Password verification took %s", time.Since(startTime))

	token, err := utils.CreateToken(tourist.ID, string(tourist.Badge))
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	badge := db_models.Badge(request.Badge)
	if !badge.Valid() {
		return utils.ErrInvalidInput
	}

	existing, err := a.touristRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	tourist := &db_models.Tourist{
		Name:            request.Name,
		Email:           request.Email,
		PasswordHash:    hashedPassword,
		Badge:           badge,
		Bio:             request.Bio,
		ProfileImage:    request.ProfileImage,
		BackgroundImage: request.BackgroundImage,
	}

	if err := a.touristRepo.Insert(ctx, tourist); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) GetTouristById(ctx context.Context, id string) (*response_models.TouristResponse, error) {
	tourist, err := a.touristRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tourist == nil {
		return nil, utils.ErrTouristNotFound
	}

	resp := touristToResponse(tourist)
	return &resp, nil
}

func (a *AccountService) ListTourists(ctx context.Context) ([]response_models.TouristResponse, error) {
	tourists, err := a.touristRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TouristResponse, 0, len(tourists))
	for i := range tourists {
		responses = append(responses, touristToResponse(&tourists[i]))
	}
	return responses, nil
}

func (a *AccountService) UpdateTourist(ctx context.Context, id string, request request_models.UpdateTouristRequest) (*response_models.TouristResponse, error) {
	tourist, err := a.touristRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tourist == nil {
		return nil, utils.ErrTouristNotFound
	}

	if request.Name != nil {
		tourist.Name = *request.Name
	}
	if request.Email != nil && *request.Email != tourist.Email {
		existing, err := a.touristRepo.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrEmailAlreadyExists
		}
		tourist.Email = *request.Email
	}
	if request.Badge != nil {
		badge := db_models.Badge(*request.Badge)
		if !badge.Valid() {
			return nil, utils.ErrInvalidInput
		}
		tourist.Badge = badge
	}
	if request.Bio != nil {
		tourist.Bio = request.Bio
	}
	if request.ProfileImage != nil {
		tourist.ProfileImage = request.ProfileImage
	}
	if request.BackgroundImage != nil {
		tourist.BackgroundImage = request.BackgroundImage
	}

	if err := a.touristRepo.Update(ctx, tourist); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := touristToResponse(tourist)
	return &resp, nil
}

func (a *AccountService) DeleteTourist(ctx context.Context, id string) error {
	if err := a.touristRepo.DeleteById(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTouristNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, request request_models.RequestForgotPassword) error {
	tourist, err := a.touristRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// Do not reveal whether the email exists.
	if tourist == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, tourist.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(tourist.Email, token); err != nil {
		log.Printf("failed to send reset mail to %s: %v", tourist.Email, err)
	}

	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.touristRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func touristToResponse(t *db_models.Tourist) response_models.TouristResponse {
	return response_models.TouristResponse{
		ID:              t.ID.String(),
		Name:            t.Name,
		Email:           t.Email,
		Badge:           string(t.Badge),
		Bio:             t.Bio,
		ProfileImage:    t.ProfileImage,
		BackgroundImage: t.BackgroundImage,
	}
}
