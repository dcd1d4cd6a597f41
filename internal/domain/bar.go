package domain

import "time"

type Drink struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BarSale struct {
	ID         int64     `json:"id"`
	DrinkID    int64     `json:"drink_id"`
	DrinkName  string    `json:"drink_name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	Total      float64   `json:"total"`
	SoldByID   int64     `json:"sold_by_id"`
	SoldByRole StaffRole `json:"sold_by_role"`
	CreatedAt  time.Time `json:"created_at"`
}
