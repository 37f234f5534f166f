package payment

type createPaymentBody struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Method    string  `json:"payment_method" binding:"required"`
	Status    string  `json:"status"`
}

type updatePaymentBody struct {
	Amount *float64 `json:"amount"`
	Method *string  `json:"payment_method"`
}

type updateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type CreatePaymentRequest struct {
	BookingID int64
	Amount    float64
	Method    string
	Status    string
}

type UpdatePaymentRequest struct {
	Amount *float64
	Method *string
}
