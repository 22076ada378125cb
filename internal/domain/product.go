package domain

// Product is a catalog entry as served by the product catalog provider.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Quantity      int      `json:"quantity"`
	Reviews       []Review `json:"reviews,omitempty"`
	AverageRating float64  `json:"averageRating,omitempty"`
}

// Review is a customer review attached to a catalog product
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}
