package lifecycle

import (
	"errors"

	"canteen-api/models"
	"canteen-api/repository"
	"canteen-api/statemachine"
)

var (
	// ErrNoItems rejects carts with no line items.
	ErrNoItems = errors.New("order items are required")
	// ErrInvalidPaymentType rejects unknown payment types.
	ErrInvalidPaymentType = errors.New("payment type must be instant or monthly")
	// ErrUnknownOrderStatus rejects status values outside the pipeline.
	ErrUnknownOrderStatus = errors.New("invalid status")
	// ErrUnknownPaymentStatus rejects unknown billing states.
	ErrUnknownPaymentStatus = errors.New("invalid payment status")
)

// statusUpdateRetries bounds the reload-and-retry loop when a versioned
// update loses a race.
const statusUpdateRetries = 3

// TokenAllocator hands out queue tokens for new orders.
type TokenAllocator interface {
	Allocate() (string, error)
}

// Manager gates order creation and status transitions. It owns the only
// write paths into the order repository.
type Manager struct {
	orders *repository.OrderRepository
	tokens TokenAllocator
}

func NewManager(orders *repository.OrderRepository, tokens TokenAllocator) *Manager {
	return &Manager{orders: orders, tokens: tokens}
}

// CreateOrder validates the cart, allocates a queue token and persists the
// new order. The amount is stored as the client supplied it; reconciling it
// against the line items is a billing-layer concern. Every order is recorded
// as paid at creation: instant payments settle at the counter and monthly
// ones are collected by an external billing run.
func (m *Manager) CreateOrder(userID, userName string, items []models.OrderItem, amount float64, paymentType models.PaymentType) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !models.ValidPaymentType(paymentType) {
		return nil, ErrInvalidPaymentType
	}

	tok, err := m.tokens.Allocate()
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		Token:         tok,
		UserID:        userID,
		UserName:      userName,
		Items:         items,
		Amount:        amount,
		PaymentType:   paymentType,
		PaymentStatus: models.PaymentCompleted,
		OrderStatus:   models.StatusPreparing,
	}
	if err := m.orders.Insert(order); err != nil {
		return nil, err
	}
	// The caller gets the in-memory snapshot, not a re-read.
	return order, nil
}

// UpdateOrderStatus moves an order along the preparation pipeline. Unknown
// statuses fail with ErrUnknownOrderStatus, backward moves with an
// InvalidTransitionError, unknown ids with ErrOrderNotFound. The versioned
// write is retried a few times so two concurrent transitions serialize
// instead of interleaving.
func (m *Manager) UpdateOrderStatus(id uint, status models.OrderStatus) error {
	if !statemachine.ValidOrderStatus(status) {
		return ErrUnknownOrderStatus
	}

	var err error
	for i := 0; i < statusUpdateRetries; i++ {
		var order *models.Order
		order, err = m.orders.GetByID(id)
		if err != nil {
			return err
		}
		if err = statemachine.CanTransition(order.OrderStatus, status); err != nil {
			return err
		}
		err = m.orders.UpdateOrderStatus(id, status, order.Version)
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}
	}
	return err
}

// UpdatePaymentStatus sets the billing state. Payment state is independent
// of the preparation pipeline, so any known value is accepted.
func (m *Manager) UpdatePaymentStatus(id uint, status models.PaymentStatus) error {
	if !statemachine.ValidPaymentStatus(status) {
		return ErrUnknownPaymentStatus
	}

	var err error
	for i := 0; i < statusUpdateRetries; i++ {
		var order *models.Order
		order, err = m.orders.GetByID(id)
		if err != nil {
			return err
		}
		err = m.orders.UpdatePaymentStatus(id, status, order.Version)
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}
	}
	return err
}
