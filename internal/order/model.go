package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
)

// ValidStatus reports whether s is one of the two reachable order states.
// Orders move between pending and delivered in either direction; nothing else
// exists.
func ValidStatus(s Status) bool {
	return s == StatusPending || s == StatusDelivered
}

type DeliveryOption string

const (
	OptionPickup   DeliveryOption = "pickup"
	OptionDelivery DeliveryOption = "delivery"
)

func ValidDeliveryOption(o DeliveryOption) bool {
	return o == OptionPickup || o == OptionDelivery
}

// DeliveryInfo is the contact snapshot copied from the user at checkout, so
// the admin can coordinate the handoff even if the profile changes later.
type DeliveryInfo struct {
	Username string `json:"username"`
	Contact  string `json:"contact"`
	Facebook string `json:"facebook,omitempty"`
	Campus   string `json:"campus"`
}

type Order struct {
	ID             string         `json:"id"`
	UserID         int            `json:"user_id"`
	Items          []OrderItem    `json:"items"`
	DeliveryOption DeliveryOption `json:"delivery_option"`
	Total          float64        `json:"total"`
	Status         Status         `json:"status"`
	Delivery       DeliveryInfo   `json:"delivery"`
	CreatedAt      time.Time      `json:"created_at"`
}

// OrderItem is a priced line frozen at checkout. UnitPrice already includes
// the per-unit delivery surcharge when the order's option is delivery.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Stats backs the admin dashboard tiles for the current day.
type Stats struct {
	OrdersToday    int     `json:"orders_today"`
	DeliveredToday int     `json:"delivered_today"`
	RevenueToday   float64 `json:"revenue_today"`
}
