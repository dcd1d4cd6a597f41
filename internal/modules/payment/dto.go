package payment

type InitiatePaymentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type InitiatePaymentResponse struct {
	Reference        string  `json:"reference"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	AuthorizationURL string  `json:"authorization_url"`
}

// webhookEvent is the subset of the gateway's event payload this core reads.
type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Status    string `json:"status"`
	} `json:"data"`
}
