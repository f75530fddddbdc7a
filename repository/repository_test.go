package repository

import (
	"path/filepath"
	"testing"

	"canteen-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestOrder(userID string) *models.Order {
	return &models.Order{
		Token:    "1234",
		UserID:   userID,
		UserName: "John Student",
		Items: models.OrderItems{
			{Name: "Tea", Price: 10, Quantity: 2},
		},
		Amount:        20,
		PaymentType:   models.PaymentInstant,
		PaymentStatus: models.PaymentCompleted,
		OrderStatus:   models.StatusPreparing,
	}
}
