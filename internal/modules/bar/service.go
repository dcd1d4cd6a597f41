package bar

import (
	"context"
	"errors"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service struct {
	bar BarRepository
	log *logrus.Logger
}

func NewService(bar BarRepository, log *logrus.Logger) *Service {
	return &Service{bar: bar, log: log}
}

func (s *Service) CreateDrink(ctx context.Context, req CreateDrinkRequest) (*domain.Drink, error) {
	if req.Price <= 0 || req.Stock < 0 {
		return nil, ErrValidation
	}

	d := &domain.Drink{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Stock:    req.Stock,
	}
	if err := s.bar.CreateDrink(ctx, d); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateDrink
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	return s.bar.ListDrinks(ctx)
}

func (s *Service) UpdateDrink(ctx context.Context, id int64, req UpdateDrinkRequest) (*domain.Drink, error) {
	if req.Price != nil && *req.Price <= 0 {
		return nil, ErrValidation
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, ErrValidation
	}

	d, err := s.bar.UpdateDrink(ctx, id, req.Price, req.Stock)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) DeactivateDrink(ctx context.Context, id int64) error {
	if err := s.bar.DeactivateDrink(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDrinkNotFound
		}
		return err
	}
	return nil
}

// RecordSale prices the sale server-side from the drink's current price,
// decrementing stock atomically with the insert.
func (s *Service) RecordSale(ctx context.Context, req RecordSaleRequest, soldByID int64, soldByRole domain.StaffRole) (*domain.BarSale, error) {
	if req.Quantity <= 0 {
		return nil, ErrValidation
	}

	sale := &domain.BarSale{
		DrinkID:    req.DrinkID,
		Quantity:   req.Quantity,
		SoldByID:   soldByID,
		SoldByRole: soldByRole,
	}
	if err := s.bar.RecordSale(ctx, sale); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, ErrInsufficientStock
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrDrinkNotFound
		}
		s.log.WithFields(logrus.Fields{"drink_id": req.DrinkID, "quantity": req.Quantity}).
			WithError(err).Error("bar sale failed")
		return nil, err
	}
	return sale, nil
}

func (s *Service) ListSales(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.BarSale, error) {
	return s.bar.ListSales(ctx, from, to, limit, offset)
}
