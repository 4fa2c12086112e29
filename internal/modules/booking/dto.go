package booking

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID int64
	Role   string
}

// CreateBookingRequest mirrors the wire payload of the SPA. The
// client-supplied totalPrice is accepted for compatibility but never
// trusted; the server recomputes it from the sitter's rate.
type CreateBookingRequest struct {
	UserID              int64   `json:"userId"`
	UserName            string  `json:"userName"`
	UserEmail           string  `json:"userEmail"`
	SitterID            int64   `json:"sitterId" binding:"required"`
	SitterName          string  `json:"sitterName"`
	ServiceType         string  `json:"serviceType" binding:"required"`
	PetName             string  `json:"petName" binding:"required"`
	PetType             string  `json:"petType"`
	Date                string  `json:"date" binding:"required"`
	Time                string  `json:"time"`
	Duration            int     `json:"duration" binding:"required"`
	TotalPrice          float64 `json:"totalPrice"`
	PaymentMethod       string  `json:"paymentMethod" binding:"required"`
	PaymentNumber       string  `json:"paymentNumber"`
	SpecialInstructions string  `json:"specialInstructions"`
}

// QuoteRequest asks for a price preview before checkout.
type QuoteRequest struct {
	SitterID    int64  `json:"sitterId" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
}

type QuoteResponse struct {
	SitterID    int64   `json:"sitterId"`
	ServiceType string  `json:"serviceType"`
	Duration    int     `json:"duration"`
	Rate        float64 `json:"rate"`
	TotalPrice  float64 `json:"totalPrice"`
}
