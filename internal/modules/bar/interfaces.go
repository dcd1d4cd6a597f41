package bar

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

type BarRepository interface {
	CreateDrink(ctx context.Context, d *domain.Drink) error
	GetDrink(ctx context.Context, id int64) (*domain.Drink, error)
	ListDrinks(ctx context.Context) ([]domain.Drink, error)
	UpdateDrink(ctx context.Context, id int64, price *float64, stock *int) (*domain.Drink, error)
	DeactivateDrink(ctx context.Context, id int64) error
	RecordSale(ctx context.Context, sale *domain.BarSale) error
	ListSales(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.BarSale, error)
}
