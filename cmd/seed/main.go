package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotelops/internal/database"
	"hotelops/internal/domain"
	"hotelops/internal/modules/catalog"
	"hotelops/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelops.db"
	}

	logger := logrus.New()
	db, err := database.Connect(dsn, logger)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	ctx := context.Background()
	staffRepo := repository.NewStaffRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	barRepo := repository.NewBarRepository(db)

	// ================== STAFF ==================
	log.Println("Creating superadmin...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.Staff{
		Email:        "admin@hotelops.local",
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         domain.RoleSuperadmin,
		Active:       true,
	}
	if err := staffRepo.Create(ctx, &admin); err != nil {
		log.Println("superadmin exists, skipping:", err)
	} else {
		log.Println("Superadmin created: admin@hotelops.local / admin123")
	}

	recHash, _ := bcrypt.GenerateFromPassword([]byte("reception123"), bcrypt.DefaultCost)
	reception := domain.Staff{
		Email:        "reception@hotelops.local",
		PasswordHash: string(recHash),
		FullName:     "Front Desk",
		Role:         domain.RoleReceptionist,
		Active:       true,
	}
	if err := staffRepo.Create(ctx, &reception); err != nil {
		log.Println("receptionist exists, skipping:", err)
	}

	// ================== INVENTORY ==================
	log.Println("Seeding room inventory...")
	rooms := map[string]int{
		"classic-single":  10,
		"classic-double":  8,
		"deluxe":          6,
		"executive-suite": 3,
		"family":          4,
	}
	for _, rt := range catalog.Default().List() {
		total := rooms[rt.ID]
		rec := domain.InventoryRecord{
			RoomTypeID:     rt.ID,
			TotalRooms:     total,
			AvailableRooms: total,
			Active:         true,
		}
		if err := inventoryRepo.Create(ctx, &rec); err != nil {
			log.Printf("inventory for %s exists, skipping: %v", rt.ID, err)
			continue
		}
		log.Printf("Inventory: %s x%d", rt.ID, total)
	}

	// ================== BAR ==================
	log.Println("Seeding drinks...")
	drinks := []domain.Drink{
		{Name: "Star Lager", Category: "beer", Price: 1200, Stock: 120},
		{Name: "Gulder", Category: "beer", Price: 1300, Stock: 96},
		{Name: "Chapman", Category: "cocktail", Price: 2500, Stock: 40},
		{Name: "Orange Juice", Category: "soft", Price: 900, Stock: 60},
		{Name: "Still Water", Category: "soft", Price: 500, Stock: 200},
	}
	for i := range drinks {
		if err := barRepo.CreateDrink(ctx, &drinks[i]); err != nil {
			log.Printf("drink %s exists, skipping: %v", drinks[i].Name, err)
			continue
		}
		log.Printf("Drink: %s at %.0f", drinks[i].Name, drinks[i].Price)
	}

	log.Println("Seed complete")
}
