package domain

import "time"

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentCompleted     PaymentStatus = "completed"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentPendingRefund PaymentStatus = "pending_refund"
)

var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentCompleted,
	PaymentRefunded,
	PaymentPendingRefund,
}

func IsValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// PaymentMethods lists accepted methods, in preference order for
// automatically registered payments.
var PaymentMethods = []string{"cash", "card", "transfer"}

func IsValidPaymentMethod(m string) bool {
	for _, v := range PaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

type Payment struct {
	ID          int64         `json:"id"`
	BookingID   int64         `json:"booking_id" validate:"required"`
	Amount      float64       `json:"amount" validate:"required,gt=0"`
	PaymentDate *time.Time    `json:"payment_date,omitempty"`
	Method      string        `json:"payment_method" validate:"required"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
