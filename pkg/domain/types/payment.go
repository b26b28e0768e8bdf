package types

import "fmt"

// PaymentStatus represents the payment state of a response
type PaymentStatus string

const (
	PaymentStatusUnpaid          PaymentStatus = "unpaid"
	PaymentStatusPendingTransfer PaymentStatus = "pending-transfer"
	PaymentStatusPendingOnsite   PaymentStatus = "pending-onsite"
	PaymentStatusPaid            PaymentStatus = "paid"
	PaymentStatusRefunded        PaymentStatus = "refunded"
)

// AllPaymentStatuses returns all valid payment statuses
func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentStatusUnpaid,
		PaymentStatusPendingTransfer,
		PaymentStatusPendingOnsite,
		PaymentStatusPaid,
		PaymentStatusRefunded,
	}
}

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid,
		PaymentStatusPendingTransfer,
		PaymentStatusPendingOnsite,
		PaymentStatusPaid,
		PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as unpaid.
func (s PaymentStatus) Normalize() PaymentStatus {
	if s == "" {
		return PaymentStatusUnpaid
	}
	return s
}

// String returns the string representation of the payment status
func (s PaymentStatus) String() string {
	return string(s)
}

// ParsePaymentStatus parses a string into a PaymentStatus
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
	return status, nil
}

// PaymentMethod represents how a response is paid for
type PaymentMethod string

const (
	PaymentMethodNone     PaymentMethod = "none"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOnsite   PaymentMethod = "onsite"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodNone, PaymentMethodTransfer, PaymentMethodOnsite:
		return true
	default:
		return false
	}
}

// Normalize returns the method, treating empty as none.
func (m PaymentMethod) Normalize() PaymentMethod {
	if m == "" {
		return PaymentMethodNone
	}
	return m
}

// String returns the string representation of the payment method
func (m PaymentMethod) String() string {
	return string(m)
}

// ParsePaymentMethod parses a string into a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", fmt.Errorf("invalid payment method: %s", s)
	}
	return method, nil
}
