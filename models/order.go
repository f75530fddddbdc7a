package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// OrderStatus represents the preparation pipeline state of an order
type OrderStatus string

const (
	StatusPreparing          OrderStatus = "preparing"
	StatusPartiallyCompleted OrderStatus = "partially_completed"
	StatusReadyToServe       OrderStatus = "ready_to_serve"
	StatusCompleted          OrderStatus = "completed"
)

// PaymentStatus is the billing state, independent of preparation state
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// PaymentType distinguishes pay-now from monthly-billed orders. Monthly
// orders are still recorded as paid at order time; collection happens in an
// external billing process.
type PaymentType string

const (
	PaymentInstant PaymentType = "instant"
	PaymentMonthly PaymentType = "monthly"
)

// ValidPaymentType reports whether t is a known payment type.
func ValidPaymentType(t PaymentType) bool {
	return t == PaymentInstant || t == PaymentMonthly
}

// OrderItem is a line item snapshot taken at order time.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderItems is stored as a single JSON text column and parsed on every read.
type OrderItems []OrderItem

func (i OrderItems) Value() (driver.Value, error) {
	b, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (i *OrderItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), i)
	case []byte:
		return json.Unmarshal(v, i)
	case nil:
		*i = nil
		return nil
	}
	return errors.New("unsupported type for order items column")
}

type Order struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Token    string `json:"token" gorm:"index;not null"`
	UserID   string `json:"user_id" gorm:"index;not null"`
	UserName string `json:"user_name" gorm:"not null"` // snapshot at creation; later renames don't touch it

	Items  OrderItems `json:"items" gorm:"type:text;not null"`
	Amount float64    `json:"amount" gorm:"not null"`

	PaymentType   PaymentType   `json:"payment_type" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	OrderStatus   OrderStatus   `json:"order_status" gorm:"not null;default:'preparing'"`

	// Version guards status updates against concurrent writers.
	Version   uint      `json:"-" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"order_date"`
}
