package orders

// Modifier is a priced add-on attached to an order item.
type Modifier struct {
	Name     string  `json:"modifier_name"`
	Quantity int     `json:"modifier_quantity"`
	Price    float64 `json:"modifier_price"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	Name                string     `json:"item_name"`
	BasePrice           float64    `json:"item_base_price"`
	Quantity            int        `json:"item_quantity"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	Modifiers           []Modifier `json:"modifiers,omitempty"`
}

// OrderRequest mirrors the order payload produced by the ordering
// front-end. Delivery fee and tip are accepted but not yet included in
// the total.
type OrderRequest struct {
	DeliveryFee   float64     `json:"delivery_fee"`
	Address       string      `json:"customer_address,omitempty"`
	OrderNotes    string      `json:"order_notes"`
	CustomerPhone string      `json:"customer_phone"`
	TipAmount     float64     `json:"tip_amount"`
	CustomerName  string      `json:"customer_name"`
	PickUpTime    string      `json:"pick_up_time,omitempty"`
	OrderType     string      `json:"order_type"`
	Items         []OrderItem `json:"order_items"`
}

// ModifierBreakdown details one modifier's contribution to a line total.
type ModifierBreakdown struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// ItemBreakdown details one order line's contribution to the subtotal.
type ItemBreakdown struct {
	Name          string              `json:"item_name"`
	Quantity      int                 `json:"item_quantity"`
	BasePrice     float64             `json:"item_base_price"`
	ItemSubtotal  float64             `json:"item_subtotal"`
	ModifierTotal float64             `json:"modifier_total"`
	ItemTotal     float64             `json:"item_total"`
	Modifiers     []ModifierBreakdown `json:"modifiers,omitempty"`
}

// OrderTotal is the computed order total with per-item breakdown.
type OrderTotal struct {
	Subtotal  float64         `json:"subtotal"`
	TaxAmount float64         `json:"tax_amount"`
	Total     float64         `json:"total"`
	Breakdown []ItemBreakdown `json:"item_breakdown"`
}
