package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
	"roamconnect/internal/models/request_models"
	"roamconnect/internal/models/response_models"
	"roamconnect/internal/repositories"
	"roamconnect/pkg/utils"
)

type EmergencyServiceInterface interface {
	CreateContact(ctx context.Context, userId string, request request_models.CreateEmergencyContactRequest) (*response_models.EmergencyContactResponse, error)
	GetContactById(ctx context.Context, id string) (*response_models.EmergencyContactResponse, error)
	ListContacts(ctx context.Context) ([]response_models.EmergencyContactResponse, error)
	UpdateContact(ctx context.Context, id string, userId string, request request_models.UpdateEmergencyContactRequest) (*response_models.EmergencyContactResponse, error)
	DeleteContact(ctx context.Context, id string, userId string) error
}

type EmergencyService struct {
	contactRepo repositories.EmergencyContactRepository
}

func NewEmergencyService(contactRepo repositories.EmergencyContactRepository) EmergencyServiceInterface {
	return &EmergencyService{
		contactRepo: contactRepo,
	}
}

func (e *EmergencyService) CreateContact(ctx context.Context, userId string, request request_models.CreateEmergencyContactRequest) (*response_models.EmergencyContactResponse, error) {
	creatorId, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	contact := &db_models.EmergencyContact{
		CreatedBy: creatorId,
		Name:      request.Name,
		Phno:      request.Phno,
		Loc:       request.Loc,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		Link:      request.Link,
	}

	if err := e.contactRepo.Insert(ctx, contact); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := contactToResponse(contact)
	return &resp, nil
}

func (e *EmergencyService) GetContactById(ctx context.Context, id string) (*response_models.EmergencyContactResponse, error) {
	contact, err := e.contactRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if contact == nil {
		return nil, utils.ErrContactNotFound
	}

	resp := contactToResponse(contact)
	return &resp, nil
}

func (e *EmergencyService) ListContacts(ctx context.Context) ([]response_models.EmergencyContactResponse, error) {
	contacts, err := e.contactRepo.ListWithCreators(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.EmergencyContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, contactToResponse(&contacts[i]))
	}
	return responses, nil
}

func (e *EmergencyService) UpdateContact(ctx context.Context, id string, userId string, request request_models.UpdateEmergencyContactRequest) (*response_models.EmergencyContactResponse, error) {
	contact, err := e.contactRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if contact == nil {
		return nil, utils.ErrContactNotFound
	}
	if contact.CreatedBy.String() != userId {
		return nil, utils.ErrForbidden
	}

	if request.Name != nil {
		contact.Name = *request.Name
	}
	if request.Phno != nil {
		contact.Phno = *request.Phno
	}
	if request.Loc != nil {
		contact.Loc = *request.Loc
	}
	if request.Latitude != nil {
		contact.Latitude = *request.Latitude
	}
	if request.Longitude != nil {
		contact.Longitude = *request.Longitude
	}
	if request.Link != nil {
		contact.Link = request.Link
	}

	if err := e.contactRepo.Update(ctx, contact); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := contactToResponse(contact)
	return &resp, nil
}

func (e *EmergencyService) DeleteContact(ctx context.Context, id string, userId string) error {
	contact, err := e.contactRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if contact == nil {
		return utils.ErrContactNotFound
	}
	if contact.CreatedBy.String() != userId {
		return utils.ErrForbidden
	}

	if err := e.contactRepo.DeleteById(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrContactNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func contactToResponse(contact *db_models.EmergencyContact) response_models.EmergencyContactResponse {
	creator := ""
	if contact.Creator != nil {
		creator = contact.Creator.Name
	}
	return response_models.EmergencyContactResponse{
		ID:        contact.ID.String(),
		Name:      contact.Name,
		Phno:      contact.Phno,
		Loc:       contact.Loc,
		Latitude:  contact.Latitude,
		Longitude: contact.Longitude,
		Link:      contact.Link,
		Creator:   creator,
	}
}
