package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInsufficientStock is returned when a sale asks for more units than the
// drink has left.
var ErrInsufficientStock = errors.New("insufficient stock")

type BarRepository struct {
	db *gorm.DB
}

func NewBarRepository(db *gorm.DB) *BarRepository {
	return &BarRepository{db: db}
}

type drinkModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	Category  string    `gorm:"column:category"`
	Price     float64   `gorm:"column:price"`
	Stock     int       `gorm:"column:stock"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (drinkModel) TableName() string { return "drinks" }

type barSaleModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	DrinkID    int64     `gorm:"column:drink_id;index"`
	DrinkName  string    `gorm:"column:drink_name"`
	Quantity   int       `gorm:"column:quantity"`
	UnitPrice  float64   `gorm:"column:unit_price"`
	Total      float64   `gorm:"column:total"`
	SoldByID   int64     `gorm:"column:sold_by_id"`
	SoldByRole string    `gorm:"column:sold_by_role"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (barSaleModel) TableName() string { return "bar_sales" }

func toDomainDrink(m drinkModel) *domain.Drink {
	return &domain.Drink{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Price:     m.Price,
		Stock:     m.Stock,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainSale(m barSaleModel) *domain.BarSale {
	return &domain.BarSale{
		ID:         m.ID,
		DrinkID:    m.DrinkID,
		DrinkName:  m.DrinkName,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		Total:      m.Total,
		SoldByID:   m.SoldByID,
		SoldByRole: domain.StaffRole(m.SoldByRole),
		CreatedAt:  m.CreatedAt,
	}
}

func (r *BarRepository) CreateDrink(ctx context.Context, d *domain.Drink) error {
	m := drinkModel{
		Name:     d.Name,
		Category: d.Category,
		Price:    d.Price,
		Stock:    d.Stock,
		Active:   true,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDrink(m)
	return nil
}

func (r *BarRepository) GetDrink(ctx context.Context, id int64) (*domain.Drink, error) {
	var m drinkModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDrink(m), nil
}

func (r *BarRepository) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	var rows []drinkModel
	tx := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Drink, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDrink(m))
	}
	return out, nil
}

func (r *BarRepository) UpdateDrink(ctx context.Context, id int64, price *float64, stock *int) (*domain.Drink, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if price != nil {
		updates["price"] = *price
	}
	if stock != nil {
		updates["stock"] = *stock
	}
	tx := r.db.WithContext(ctx).Model(&drinkModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetDrink(ctx, id)
}

func (r *BarRepository) DeactivateDrink(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&drinkModel{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]any{"active": false, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RecordSale decrements stock and inserts the sale row in one transaction so
// a sale can never be recorded against stock it did not consume.
func (r *BarRepository) RecordSale(ctx context.Context, sale *domain.BarSale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d drinkModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND active = ?", sale.DrinkID, true).
			First(&d).Error; err != nil {
			return err
		}
		if d.Stock < sale.Quantity {
			return ErrInsufficientStock
		}

		if err := tx.Model(&drinkModel{}).Where("id = ?", d.ID).
			Updates(map[string]any{"stock": d.Stock - sale.Quantity, "updated_at": time.Now().UTC()}).Error; err != nil {
			return err
		}

		m := barSaleModel{
			DrinkID:    sale.DrinkID,
			DrinkName:  d.Name,
			Quantity:   sale.Quantity,
			UnitPrice:  d.Price,
			Total:      math.Round(d.Price*float64(sale.Quantity)*100) / 100,
			SoldByID:   sale.SoldByID,
			SoldByRole: string(sale.SoldByRole),
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*sale = *toDomainSale(m)
		return nil
	})
}

func (r *BarRepository) ListSales(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.BarSale, error) {
	q := r.db.WithContext(ctx).Model(&barSaleModel{}).Order("created_at DESC")
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at < ?", to)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var rows []barSaleModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.BarSale, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSale(m))
	}
	return out, nil
}

// SalesRevenue sums bar takings in [from, to).
func (r *BarRepository) SalesRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	tx := r.db.WithContext(ctx).
		Model(&barSaleModel{}).
		Select("COALESCE(SUM(total), 0)").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&total)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return total, nil
}
