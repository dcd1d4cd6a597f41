package repository

import "gorm.io/gorm"

// Migrate creates or updates every table this package owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&staffModel{},
		&inventoryModel{},
		&bookingModel{},
		&gatewayPaymentModel{},
		&webhookEventModel{},
		&drinkModel{},
		&barSaleModel{},
	)
}
