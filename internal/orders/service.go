package orders

import (
	"errors"
	"math"
)

type Service struct {
	taxRate float64
}

func NewService(taxRate float64) *Service {
	return &Service{taxRate: taxRate}
}

// --------------------------------------------------
// Order total (PURE computation, no order placement)
// --------------------------------------------------
// CalculateTotal sums base prices, quantities, and modifiers, then
// applies the flat tax rate. Delivery fee and tip are ignored for now,
// matching the front-of-house quote behavior.
func (s *Service) CalculateTotal(order *OrderRequest) (*OrderTotal, error) {
	if order == nil || len(order.Items) == 0 {
		return nil, errors.New("order has no items")
	}

	var subtotal float64
	breakdown := make([]ItemBreakdown, 0, len(order.Items))

	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return nil, errors.New("item quantity must be positive")
		}
		if item.BasePrice < 0 {
			return nil, errors.New("item price must not be negative")
		}

		itemSubtotal := item.BasePrice * float64(item.Quantity)

		var modifierTotal float64
		var mods []ModifierBreakdown
		for _, m := range item.Modifiers {
			modTotal := m.Price * float64(m.Quantity)
			modifierTotal += modTotal
			mods = append(mods, ModifierBreakdown{
				Name:      m.Name,
				Quantity:  m.Quantity,
				UnitPrice: m.Price,
				Total:     round2(modTotal),
			})
		}

		itemTotal := itemSubtotal + modifierTotal
		subtotal += itemTotal

		breakdown = append(breakdown, ItemBreakdown{
			Name:          item.Name,
			Quantity:      item.Quantity,
			BasePrice:     item.BasePrice,
			ItemSubtotal:  round2(itemSubtotal),
			ModifierTotal: round2(modifierTotal),
			ItemTotal:     round2(itemTotal),
			Modifiers:     mods,
		})
	}

	tax := subtotal * s.taxRate

	return &OrderTotal{
		Subtotal:  round2(subtotal),
		TaxAmount: round2(tax),
		Total:     round2(subtotal + tax),
		Breakdown: breakdown,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
