package service

import (
	"context"
	"strings"

	"shop-service/internal/models"
	"shop-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddressService struct {
	addresses repository.AddressRepo
	log       *zap.Logger
}

func NewAddressService(addresses repository.AddressRepo, log *zap.Logger) *AddressService {
	return &AddressService{addresses: addresses, log: log}
}

type AddressInput struct {
	Country string
	City    string
	Street  string
	Zipcode string
	Active  bool
}

// CreateAddress сохраняет адрес; если он помечен активным, остальные адреса
// пользователя деактивируются в той же транзакции — активный адрес всегда
// не больше одного.
func (s *AddressService) CreateAddress(ctx context.Context, in AddressInput) (*models.Address, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	a := &models.Address{
		UserID:   userID,
		Country:  strings.TrimSpace(in.Country),
		City:     strings.TrimSpace(in.City),
		Street:   strings.TrimSpace(in.Street),
		Zipcode:  strings.TrimSpace(in.Zipcode),
		IsActive: in.Active,
	}

	if !in.Active {
		if err := s.addresses.Create(ctx, a); err != nil {
			return nil, err
		}
		return a, nil
	}

	err = s.addresses.WithTx(ctx, func(addresses repository.AddressRepo) error {
		if err := addresses.DeactivateAllForUser(ctx, userID); err != nil {
			return err
		}
		return addresses.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Activate делает адрес активным, снимая активность с остальных адресов
// пользователя в одной транзакции.
func (s *AddressService) Activate(ctx context.Context, addressID uuid.UUID) error {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	a, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAddressNotFound
	}
	if a.UserID != userID {
		return ErrForbidden
	}

	return s.addresses.WithTx(ctx, func(addresses repository.AddressRepo) error {
		if err := addresses.DeactivateAllForUser(ctx, userID); err != nil {
			return err
		}
		return addresses.Activate(ctx, addressID)
	})
}

func (s *AddressService) ListMine(ctx context.Context) ([]models.Address, error) {
	userID, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	return s.addresses.ListByUser(ctx, userID)
}

func (s *AddressService) Delete(ctx context.Context, addressID uuid.UUID) (bool, error) {
	userID, role, err := requireAuth(ctx)
	if err != nil {
		return false, err
	}

	a, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		return false, err
	}
	if a == nil {
		return false, ErrAddressNotFound
	}
	if a.UserID != userID && !HasCapability(role, CapManageAddresses) {
		return false, ErrForbidden
	}

	return s.addresses.Delete(ctx, addressID)
}
