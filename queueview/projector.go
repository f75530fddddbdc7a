// Package queueview derives the minimal status view that polling clients
// watch while they wait at the counter.
package queueview

import (
	"errors"

	"canteen-api/models"
	"canteen-api/repository"
)

// OrderLookup is the slice of the repository the projector needs.
type OrderLookup interface {
	GetByToken(token string) (*models.Order, error)
}

// Status is the projection: just the pipeline state, not the full order.
type Status struct {
	Found       bool
	OrderStatus models.OrderStatus
}

type Projector struct {
	orders OrderLookup
}

func NewProjector(orders OrderLookup) *Projector {
	return &Projector{orders: orders}
}

// StatusOf resolves a token to its order status. A missing token is not an
// error: clients poll before the order may exist and treat Found=false as
// "not yet visible".
func (p *Projector) StatusOf(token string) (Status, error) {
	order, err := p.orders.GetByToken(token)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return Status{}, nil
		}
		return Status{}, err
	}
	return Status{Found: true, OrderStatus: order.OrderStatus}, nil
}
