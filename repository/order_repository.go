package repository

import (
	"errors"

	"canteen-api/models"

	"gorm.io/gorm"
)

var (
	// ErrOrderNotFound is returned when no order matches the given id or token.
	ErrOrderNotFound = errors.New("order not found")
	// ErrVersionConflict is returned when a status update lost a race with a
	// concurrent writer and should be retried against the fresh row.
	ErrVersionConflict = errors.New("order was modified concurrently")
)

// Statistics is the admin dashboard aggregate.
type Statistics struct {
	TotalOrders     int64   `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int64   `json:"pendingOrders"`
	CompletedOrders int64   `json:"completedOrders"`
}

// OrderRepository persists orders. The handle is injected rather than read
// from a package global so tests and callers control the lifetime.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Insert persists a new order, assigning its id and creation timestamp.
func (r *OrderRepository) Insert(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetByToken returns the newest order carrying the token. The allocator
// keeps tokens unique among unfinished orders, so among duplicates only the
// newest can still be live on the queue display.
func (r *OrderRepository) GetByToken(token string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("token = ?", token).
		Order("created_at desc, id desc").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at desc").Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus sets the order status if the row still carries the
// expected version. ErrVersionConflict means the caller raced another writer.
func (r *OrderRepository) UpdateOrderStatus(id uint, status models.OrderStatus, version uint) error {
	return r.updateVersioned(id, version, map[string]interface{}{"order_status": status})
}

// UpdatePaymentStatus is the billing-side counterpart of UpdateOrderStatus.
func (r *OrderRepository) UpdatePaymentStatus(id uint, status models.PaymentStatus, version uint) error {
	return r.updateVersioned(id, version, map[string]interface{}{"payment_status": status})
}

func (r *OrderRepository) updateVersioned(id uint, version uint, fields map[string]interface{}) error {
	fields["version"] = version + 1
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOrderNotFound
		}
		return ErrVersionConflict
	}
	return nil
}

// Delete hard-deletes an order. Administrative escape hatch only.
func (r *OrderRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// TokenInUse reports whether the token belongs to an order that is still in
// the preparation pipeline. Completed orders release their token.
func (r *OrderRepository) TokenInUse(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("token = ? AND order_status != ?", token, models.StatusCompleted).
		Count(&count).Error
	return count > 0, err
}

// AggregateStatistics computes the admin dashboard numbers. Revenue only
// counts orders whose payment actually completed.
func (r *OrderRepository) AggregateStatistics() (*Statistics, error) {
	var stats Statistics

	if err := r.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	err := r.db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&models.Order{}).
		Where("order_status != ?", models.StatusCompleted).
		Count(&stats.PendingOrders).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&models.Order{}).
		Where("order_status = ?", models.StatusCompleted).
		Count(&stats.CompletedOrders).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
