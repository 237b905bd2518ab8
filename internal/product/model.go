package product

import "time"

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	Stock     int     `json:"stock"`
	ImageURL  *string `json:"image_url,omitempty"`
	CreatedAt time.Time
}
