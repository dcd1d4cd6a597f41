package bar

type CreateDrinkRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Stock    int     `json:"stock"`
}

type UpdateDrinkRequest struct {
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type RecordSaleRequest struct {
	DrinkID  int64 `json:"drink_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required"`
}
