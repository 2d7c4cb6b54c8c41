package service

import (
	"context"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/google/uuid"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error)
	GetAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	UpdateAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {

	address := &models.Address{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       req.Name,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Type:       req.Type,
	}

	if address.Type == "" {
		address.Type = models.AddressTypeHome
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to create address").WithError(err)
	}

	return address, nil
}

// GetAddress resolves the id and enforces ownership: a missing id is a
// not-found, someone else's address is an authorization failure.
func (s *addressService) GetAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*models.Address, error) {

	address, err := s.repo.GetAddressByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Address not found").WithError(err)
	}

	if address.UserID != userID {
		return nil, errors.UnauthorizedError("Not authorized to access this address")
	}

	return address, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {

	addresses, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	if addresses == nil {
		addresses = []*models.Address{}
	}

	return addresses, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error) {

	address, err := s.GetAddress(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		address.Name = *req.Name
	}

	if req.Phone != nil {
		address.Phone = *req.Phone
	}

	if req.Street != nil {
		address.Street = *req.Street
	}

	if req.City != nil {
		address.City = *req.City
	}

	if req.State != nil {
		address.State = *req.State
	}

	if req.PostalCode != nil {
		address.PostalCode = *req.PostalCode
	}

	if req.Type != nil {
		address.Type = *req.Type
	}

	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to update address").WithError(err)
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {

	if _, err := s.GetAddress(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return errors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}
