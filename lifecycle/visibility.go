package lifecycle

import "canteen-api/models"

// KitchenActionable reports whether kitchen staff should see the order:
// paid for, and still somewhere in the preparation pipeline.
func KitchenActionable(o models.Order) bool {
	return o.PaymentStatus == models.PaymentCompleted &&
		o.OrderStatus != models.StatusCompleted
}

// PaymentReconcilable reports whether the order belongs on the payment
// reconciliation screen, irrespective of preparation state.
func PaymentReconcilable(o models.Order) bool {
	return o.PaymentStatus == models.PaymentCompleted
}

// FilterKitchen returns the orders the kitchen queue screen shows.
func FilterKitchen(orders []models.Order) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if KitchenActionable(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FilterPayments returns the orders the payment reconciliation screen shows.
func FilterPayments(orders []models.Order) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if PaymentReconcilable(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
