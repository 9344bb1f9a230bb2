package passengers

import (
	"context"
	"errors"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/repository"
)

type PassengerUseCase interface {
	AddPassenger(ctx context.Context, age int) (*domain.Passenger, error)
	GetPassenger(ctx context.Context, id int64) (*domain.Passenger, error)
}

type PassengerService struct {
	repo repository.PassengerRepository
}

func NewPassengerService(repo repository.PassengerRepository) *PassengerService {
	return &PassengerService{repo: repo}
}

func (s *PassengerService) AddPassenger(ctx context.Context, age int) (*domain.Passenger, error) {
	if age < 0 {
		return nil, errors.New("age must be non-negative")
	}
	passenger := &domain.Passenger{Age: age}
	if err := s.repo.Create(ctx, passenger); err != nil {
		return nil, err
	}
	return passenger, nil
}

func (s *PassengerService) GetPassenger(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

var _ PassengerUseCase = (*PassengerService)(nil)
