package config

import (
	"log"
	"os"

	"canteen-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "canteen_queue_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath returns the sqlite file location, env-overridable for deployments.
func DBPath() string {
	return getEnv("CANTEEN_DB", "canteen.db")
}

// InitDB opens the database, migrates the schema and seeds the canteen
// catalogue. The handle is returned, not stashed in a global, so every
// component receives it explicitly.
func InitDB(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seed(db)

	log.Println("Database connected and migrated successfully")
	return db
}

// seed inserts the starter accounts and the menu catalogue on first run.
func seed(db *gorm.DB) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash seed password:", err)
		}
		users := []models.User{
			{Name: "Admin User", Email: "admin@admin.sngce.ac.in", UserID: "ADM001", Role: models.RoleAdmin, PasswordHash: string(hash)},
			{Name: "John Student", Email: "john@gmail.com", UserID: "STU001", Role: models.RoleStudent, PasswordHash: string(hash)},
			{Name: "Dr. Smith", Email: "smith@faculty.sngce.ac.in", UserID: "FAC001", Role: models.RoleFaculty, PasswordHash: string(hash)},
			{Name: "Kitchen Staff", Email: "staff@kitchen.sngce.ac.in", UserID: "KIT001", Role: models.RoleKitchen, PasswordHash: string(hash)},
		}
		if err := db.Create(&users).Error; err != nil {
			log.Println("Seed users skipped:", err)
		} else {
			log.Println("Seeded sample users")
		}
	}

	var menuCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		items := []models.MenuItem{
			{Name: "Paneer Burger", Price: 80, Category: "Veg", IsVeg: true},
			{Name: "Veg Biriyani", Price: 90, Category: "Veg", IsVeg: true},
			{Name: "Veg Sandwich", Price: 80, Category: "Veg", IsVeg: true},
			{Name: "Veg Pizza", Price: 120, Category: "Veg", IsVeg: true},
			{Name: "Chicken Burger", Price: 100, Category: "Non-Veg"},
			{Name: "Chicken Biriyani", Price: 150, Category: "Non-Veg"},
			{Name: "French Fries", Price: 50, Category: "Snacks", IsVeg: true},
			{Name: "Meat Roll", Price: 20, Category: "Snacks"},
			{Name: "Coke", Price: 30, Category: "Cold Drinks", IsVeg: true},
			{Name: "Pepsi", Price: 30, Category: "Cold Drinks", IsVeg: true},
			{Name: "Tea", Price: 10, Category: "Hot Drinks", IsVeg: true},
			{Name: "Coffee", Price: 20, Category: "Hot Drinks", IsVeg: true},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Println("Seed menu skipped:", err)
		} else {
			log.Println("Seeded menu catalogue")
		}
	}
}
